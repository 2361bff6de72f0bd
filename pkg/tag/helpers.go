package tag

import "fmt"

// Textf formats a text child.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// If returns the node if condition is true, nil otherwise.
// Nil children are skipped by every constructor.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Range maps items to nodes, dropping nil results.
//
//	Ul(Range(items, func(it Item, i int) *Node {
//	    return Li(it.Name)
//	}))
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	out := make([]*Node, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			out = append(out, n)
		}
	}
	return out
}
