package tag

import (
	"slices"
	"sort"
	"strings"

	"github.com/vango-dev/tagkit/internal/errors"
)

// SelectOption configures a Select call.
type SelectOption func(*selectConfig)

type selectConfig struct {
	recurse    bool
	pop        bool
	firstMatch bool
}

// Recurse descends into children that do not match themselves.
func Recurse() SelectOption {
	return func(c *selectConfig) { c.recurse = true }
}

// PopMatches removes matched nodes from their parents. A popping query that
// matches nothing fails with ErrNotFound.
func PopMatches() SelectOption {
	return func(c *selectConfig) { c.pop = true }
}

// FirstMatch stops at the first match at any depth.
func FirstMatch() SelectOption {
	return func(c *selectConfig) { c.firstMatch = true }
}

// Match is one selection result together with its position at the time of
// the query.
type Match struct {
	Parent *Node
	Index  int
	Node   *Node
}

// Select returns the children of n matching target, which is either a Kind
// or a lowercase tag name. Passing a *Node fails with ErrUsage: selection
// works on kinds, not identities.
//
// Direct children are scanned left to right. With Recurse, children that do
// not match are searched in turn. Results list the direct matches of a node
// before the matches found below its non-matching children.
//
// Without PopMatches an empty result is not an error.
func (n *Node) Select(target any, opts ...SelectOption) ([]*Node, error) {
	matches, err := n.SelectMatches(target, opts...)
	if err != nil {
		return nil, err
	}
	nodes := make([]*Node, len(matches))
	for i, m := range matches {
		nodes[i] = m.Node
	}
	return nodes, nil
}

// SelectMatches is Select returning each match with its parent and index.
// Matches removed with PopMatches can be put back with Reinsert.
func (n *Node) SelectMatches(target any, opts ...SelectOption) ([]Match, error) {
	name, err := selectorName(target)
	if err != nil {
		return nil, err
	}
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var matches []Match
	n.scan(name, cfg, &matches)

	if len(matches) == 0 {
		if cfg.pop {
			return nil, errors.New("T003").WithDetailf("%q under <%s>", name, n.name)
		}
		return nil, nil
	}
	if cfg.pop {
		removeMatches(matches)
	}
	return matches, nil
}

// scan collects matches below n and reports whether a FirstMatch query is
// satisfied.
func (n *Node) scan(name string, cfg selectConfig, out *[]Match) bool {
	var direct, deeper []Match
	done := false

	for i, ch := range n.children {
		c, ok := ch.(*Node)
		if !ok {
			continue
		}
		if c.name == name {
			direct = append(direct, Match{Parent: n, Index: i, Node: c})
			if cfg.firstMatch {
				done = true
				break
			}
		} else if cfg.recurse {
			if c.scan(name, cfg, &deeper) && cfg.firstMatch {
				done = true
				break
			}
		}
	}

	*out = append(*out, direct...)
	*out = append(*out, deeper...)
	return done
}

// removeMatches detaches matches from their parents, highest index first so
// earlier indices stay valid.
func removeMatches(matches []Match) {
	order := make([]Match, len(matches))
	copy(order, matches)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Index > order[j].Index })
	for _, m := range order {
		m.Parent.children = slices.Delete(m.Parent.children, m.Index, m.Index+1)
	}
}

// Reinsert puts popped matches back at their recorded positions, restoring
// the tree as it was before the popping query.
func Reinsert(matches []Match) error {
	order := make([]Match, len(matches))
	copy(order, matches)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Index < order[j].Index })

	for _, m := range order {
		if m.Parent == nil || m.Node == nil {
			return errors.New("T006").WithDetail("match without parent or node")
		}
		if m.Index < 0 || m.Index > len(m.Parent.children) {
			return errors.New("T006").
				WithDetailf("index %d out of range for <%s>", m.Index, m.Parent.name)
		}
		if err := checkAcyclic(m.Parent, []any{m.Node}); err != nil {
			return err
		}
		m.Parent.children = slices.Insert(m.Parent.children, m.Index, any(m.Node))
	}
	return nil
}

// Pop removes and returns the first node matching target, searching direct
// children only. It fails with ErrNotFound when nothing matches.
func (n *Node) Pop(target any) (*Node, error) {
	nodes, err := n.Select(target, PopMatches(), FirstMatch())
	if err != nil {
		return nil, err
	}
	return nodes[0], nil
}

// PopOrDefault is Pop returning def instead of ErrNotFound.
// Usage errors are still returned.
func (n *Node) PopOrDefault(target any, def *Node) (*Node, error) {
	node, err := n.Pop(target)
	if errors.Code(err) == "T003" {
		return def, nil
	}
	return node, err
}

// selectorName resolves a selector to the tag name it matches.
func selectorName(target any) (string, error) {
	switch t := target.(type) {
	case string:
		return strings.ToLower(t), nil
	case Kind:
		if t == KindCustom || t >= kindCount {
			return "", errors.New("T006").WithDetailf("kind %d has no tag name", t)
		}
		return t.Name(), nil
	case *Node:
		return "", errors.New("T004").
			WithDetailf("got <%s> instance", t.name).
			WithSuggestion("Pass tag.Kind" + exportedName(t.name) + " or \"" + t.name + "\"")
	default:
		return "", errors.New("T006").WithDetailf("got %T", target)
	}
}

func exportedName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
