package tag

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/vango-dev/tagkit/internal/errors"
)

// Render serializes the subtree rooted at n to HTML.
//
// Attributes are written in insertion order as key='value'. Text children
// are escaped, Raw children and other Renderables are written as-is.
// Self-closing elements end with " />" and have no closing tag.
//
// Render is a pure function of the tree: it does not mutate it and reads no
// global state besides the static tag table, so independent trees may be
// rendered concurrently. On error no partial output is returned.
func (n *Node) Render() (string, error) {
	var b strings.Builder
	if err := n.write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo renders n and writes the complete result to w. Nothing is
// written when rendering fails.
func (n *Node) RenderTo(w io.Writer) error {
	html, err := n.Render()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

func (n *Node) write(b *strings.Builder) error {
	writeOpenTag(b, n)

	if n.SelfClosing() {
		b.WriteString(" />")
		return nil
	}
	b.WriteByte('>')

	for i, child := range n.children {
		switch c := child.(type) {
		case *Node:
			if err := c.write(b); err != nil {
				return err
			}
		case string:
			b.WriteString(escapeText(c))
		case Raw:
			b.WriteString(string(c))
		case Renderable:
			if isNilPointer(c) {
				return errors.New("T005").
					WithDetailf("child %d of <%s> is a nil %T", i, n.name, child)
			}
			out, err := c.Render()
			if err != nil {
				return err
			}
			b.WriteString(out)
		default:
			return errors.New("T005").
				WithDetailf("child %d of <%s> has type %T", i, n.name, child)
		}
	}

	b.WriteString("</")
	b.WriteString(n.name)
	b.WriteByte('>')
	return nil
}

// isNilPointer reports whether r is a typed nil pointer, which would panic
// in Render.
func isNilPointer(r Renderable) bool {
	v := reflect.ValueOf(r)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// writeOpenTag writes "<name" followed by every attribute.
func writeOpenTag(b *strings.Builder, n *Node) {
	b.WriteByte('<')
	b.WriteString(n.name)

	n.attrs.Each(func(key string, value any) {
		key = WireKey(key)

		// Presence flags
		if flag, ok := value.(bool); ok && IsBooleanAttr(key) {
			if flag {
				b.WriteByte(' ')
				b.WriteString(key)
			}
			return
		}

		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString("='")
		b.WriteString(escapeAttr(attrToString(value)))
		b.WriteByte('\'')
	})
}

// attrToString converts an attribute value to its wire text. nil becomes
// "none" and booleans become lowercase tokens.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return "none"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
