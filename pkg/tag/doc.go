// Package tag builds HTML documents as trees of typed elements.
//
// # Building
//
// Every HTML element has a constructor taking children and attributes in
// any order:
//
//	page := Html(
//	    Body(
//	        H1("Hello", ID("title"), Class("big")),
//	        Ul(Range(items, func(s string, _ int) *Node { return Li(s) })),
//	    ),
//	)
//
// Strings become escaped text. Raw is written verbatim. Any Renderable, such
// as a *style.StyleSheet, is written with its own Render output. Constructors
// panic on misuse; New and NewCustom return the error instead.
//
// Attribute keys are written in insertion order after trailing underscores
// are dropped and the remaining ones become hyphens, so Attribute("hx_get",
// "/x") renders as hx-get='/x' and Attribute("class_", "a") as class='a'.
// A nil value renders as none. Booleans render as true or false, except for
// presence flags such as checked or disabled which render bare when true and
// are omitted when false.
//
// # Mutating
//
// AddChild and AddHead insert nodes after checking that the tree stays
// acyclic. Select and Pop find direct or nested children by Kind or tag
// name and can detach them.
//
// # Callbacks
//
// AttachCallback registers a handler with a RouteRegistrar under a fresh
// path and points an hx-<method> attribute at it. Package hxroute provides
// a chi-backed registrar.
package tag
