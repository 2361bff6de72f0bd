package tag

import (
	"github.com/vango-dev/tagkit/internal/errors"
)

// AddChild appends children to n. Arguments follow the same rules as New,
// except that attributes are rejected.
//
// The insertion is atomic: if any inserted subtree already contains n, the
// call fails with ErrCyclicGraph and n is left unchanged.
func (n *Node) AddChild(args ...any) error {
	children, attrs := collect(args)
	if len(attrs) > 0 {
		return errors.New("T009").WithDetailf("%d attributes passed to AddChild", len(attrs))
	}
	if len(children) == 0 {
		return nil
	}
	if n.SelfClosing() {
		return errors.New("T001").
			WithDetailf("<%s> cannot hold %d children", n.name, len(children))
	}
	if err := checkAcyclic(n, children); err != nil {
		return err
	}
	n.children = append(n.children, children...)
	return nil
}

// AddHead merges head content into n. If n already has a <head> child, the
// new content is appended after the existing head children and the merged
// head replaces the old one at the same index. Otherwise a new <head> is
// inserted as the first child.
func (n *Node) AddHead(args ...any) error {
	children, attrs := collect(args)
	if len(attrs) > 0 {
		return errors.New("T009").WithDetailf("%d attributes passed to AddHead", len(attrs))
	}
	if len(children) == 0 {
		return nil
	}
	if n.SelfClosing() {
		return errors.New("T001").WithDetailf("<%s> cannot hold a head", n.name)
	}
	if err := checkAcyclic(n, children); err != nil {
		return err
	}

	idx := n.indexOf(KindHead.Name())
	if idx < 0 {
		head := &Node{kind: KindHead, name: KindHead.Name(), children: children}
		n.children = append([]any{head}, n.children...)
		return nil
	}

	existing := n.children[idx].(*Node)
	merged := make([]any, 0, len(existing.children)+len(children))
	merged = append(merged, existing.children...)
	merged = append(merged, children...)
	n.children[idx] = &Node{
		kind:          KindHead,
		name:          existing.name,
		children:      merged,
		attrs:         existing.attrs.clone(),
		callbackRoute: existing.callbackRoute,
	}
	return nil
}

// indexOf returns the index of the first direct child named name, or -1.
func (n *Node) indexOf(name string) int {
	for i, ch := range n.children {
		if c, ok := ch.(*Node); ok && c.name == name {
			return i
		}
	}
	return -1
}

// checkAcyclic fails if target is reachable from any node in items,
// including target itself. All items share one visited set, so the walk is
// linear in the size of the inserted subtrees.
func checkAcyclic(target *Node, items []any) error {
	stack := make([]*Node, 0, len(items))
	for _, it := range items {
		if c, ok := it.(*Node); ok {
			stack = append(stack, c)
		}
	}

	visited := make(map[*Node]struct{})
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur == target {
			return errors.New("T002").
				WithDetailf("<%s> would become its own descendant", target.name)
		}
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}

		for _, ch := range cur.children {
			if c, ok := ch.(*Node); ok {
				stack = append(stack, c)
			}
		}
	}
	return nil
}
