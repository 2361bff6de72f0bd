// Package components provides ready-made building blocks on top of package
// tag: a data table and links to classless CSS frameworks.
package components
