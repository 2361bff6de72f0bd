package tag

import (
	"fmt"
	"strings"

	"github.com/vango-dev/tagkit/internal/errors"
)

// Renderable is anything that can be embedded in a tree and serialized to
// markup. Output of a Renderable child is written without escaping.
// *Node and *style.StyleSheet both implement it.
type Renderable interface {
	Render() (string, error)
}

// Raw is trusted markup written without escaping.
// Use with caution - can lead to XSS if content is user-provided.
type Raw string

// Node is one HTML element: a kind, an ordered attribute map and an ordered
// list of children. Children are *Node, string (escaped text), Raw or any
// other Renderable.
//
// A Node exclusively owns its child list. Mutating methods keep the graph
// acyclic; they are not safe for concurrent use on the same tree.
type Node struct {
	kind          Kind
	name          string
	children      []any
	attrs         Attributes
	callbackRoute string
}

// New creates an element of the given kind.
//
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string, Raw, []any or
// any Renderable. Empty attributes and nil nodes are ignored, which allows
// conditional content. Any other value is kept as a child and rejected when
// the tree is rendered.
//
// New fails with ErrValidation when a self-closing kind is given children.
func New(kind Kind, args ...any) (*Node, error) {
	if kind == KindCustom || kind >= kindCount {
		return nil, errors.New("T006").WithDetailf("kind %d has no tag name", kind)
	}
	return build(kind, kind.Name(), args)
}

// NewCustom creates an element with a custom tag name. Custom elements are
// never self-closing.
func NewCustom(name string, args ...any) (*Node, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, errors.New("T006").WithDetail("custom element needs a tag name")
	}
	if k, ok := kindsByName[name]; ok {
		return build(k, name, args)
	}
	return build(KindCustom, name, args)
}

func build(kind Kind, name string, args []any) (*Node, error) {
	n := &Node{kind: kind, name: name}
	children, attrs := collect(args)
	for _, a := range attrs {
		n.attrs.Set(a.Key, a.Value)
	}
	if len(children) > 0 && kind.SelfClosing() {
		return nil, errors.New("T001").
			WithDetailf("<%s> cannot hold %d children", name, len(children)).
			WithSuggestion("Drop the children or use a container element")
	}
	n.children = children
	return n, nil
}

// collect splits constructor arguments into children and attributes.
func collect(args []any) ([]any, []Attr) {
	var children []any
	var attrs []Attr
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if !v.IsEmpty() {
				attrs = append(attrs, v)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					attrs = append(attrs, a)
				}
			}
		case *Node:
			if v != nil {
				children = append(children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					children = append(children, c)
				}
			}
		case []any:
			c, a := collect(v)
			children = append(children, c...)
			attrs = append(attrs, a...)
		default:
			children = append(children, v)
		}
	}
	return children, attrs
}

// must panics with err. Element constructors use it so trees can be written
// as nested expressions, like regexp.MustCompile.
func must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

// Kind returns the element kind (KindCustom for custom elements).
func (n *Node) Kind() Kind {
	return n.kind
}

// Name returns the lowercase tag name.
func (n *Node) Name() string {
	return n.name
}

// SelfClosing reports whether the node renders without a closing tag.
func (n *Node) SelfClosing() bool {
	return n.kind.SelfClosing()
}

// Children returns a copy of the child list.
func (n *Node) Children() []any {
	out := make([]any, len(n.children))
	copy(out, n.children)
	return out
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Attributes returns the node's attribute map for reading or editing.
func (n *Node) Attributes() *Attributes {
	return &n.attrs
}

// Attr returns the value stored under key.
func (n *Node) Attr(key string) (any, bool) {
	return n.attrs.Get(key)
}

// SetAttr stores an attribute value and returns n for chaining.
func (n *Node) SetAttr(key string, value any) *Node {
	n.attrs.Set(key, value)
	return n
}

// CallbackRoute returns the route registered by AttachCallback, or "".
func (n *Node) CallbackRoute() string {
	return n.callbackRoute
}

// Clone returns a deep copy of the subtree rooted at n. Text and Raw
// children are copied by value; other Renderable children are shared.
func (n *Node) Clone() *Node {
	c := &Node{
		kind:          n.kind,
		name:          n.name,
		attrs:         n.attrs.clone(),
		callbackRoute: n.callbackRoute,
	}
	if n.children != nil {
		c.children = make([]any, len(n.children))
		for i, ch := range n.children {
			if cn, ok := ch.(*Node); ok {
				c.children[i] = cn.Clone()
			} else {
				c.children[i] = ch
			}
		}
	}
	return c
}

// String returns the opening tag, e.g. <div id='main'>. It is meant for
// logs and debugging; use Render for markup.
func (n *Node) String() string {
	var b strings.Builder
	writeOpenTag(&b, n)
	if n.SelfClosing() {
		b.WriteString(" />")
	} else {
		b.WriteByte('>')
	}
	return b.String()
}

// GoString implements fmt.GoStringer for %#v output.
func (n *Node) GoString() string {
	return fmt.Sprintf("tag.Node{%s, %d children}", n.name, len(n.children))
}
