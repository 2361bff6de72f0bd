// Package style builds CSS stylesheets as nested selector trees.
//
// A StyleSheet maps keys to values. String and number values are property
// declarations; *StyleSheet values are nested rule sets whose selector is
// the key. Rendering flattens the tree, joining nested selectors with a
// space:
//
//	sheet := style.New(
//	    style.Sel("ul",
//	        style.Decl("color", "red"),
//	        style.Decl("width", 25),
//	        style.Sel("li", style.Decl("margin", 0)),
//	    ),
//	)
//
// renders as
//
//	ul {
//	    color: red;
//	    width: 25 px;
//	}
//	ul li {
//	    margin: 0 px;
//	}
//
// Bare numbers always get a " px" suffix, including for unitless
// properties such as opacity. Pass a string to avoid it.
//
// A *StyleSheet implements Render() (string, error) and can be embedded in
// a tag tree, usually inside a <style> element.
package style
