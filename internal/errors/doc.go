// Package errors provides the structured error taxonomy shared by tagkit's
// tag, style and render packages.
//
// Every error carries a stable code (e.g. "T002") that maps to a short
// message, a longer explanation and a category. Each category has a sentinel
// error, so callers can branch with the standard library:
//
//	if errors.Is(err, tag.ErrCyclicGraph) {
//	    // the insertion was rejected and the tree is unchanged
//	}
//
// # Error Categories
//
//   - validation: structural misuse (self-closing tag given children, flat stylesheet)
//   - cycle: an insertion would make a node its own descendant
//   - not_found: a popping query matched nothing
//   - usage: a node instance was passed where a kind or tag name was expected
//   - type: a value that cannot be rendered reached the serializer
//   - config: the CLI configuration could not be read or is invalid
//
// # Usage
//
//	err := errors.New("T001").
//	    WithDetailf("<%s> cannot hold %d children", "br", 1).
//	    WithSuggestion("Drop the children or use a container element")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR T001: Self-closing element given children
//	//
//	//   <br> cannot hold 1 children
//	//
//	//   Hint: Drop the children or use a container element
package errors
