// Package template stores a named, versioned element list so that a
// document skeleton can be saved, patched, and written out again.
//
// Templates are persisted as JSON or YAML. Both carry the cached text of
// every element, so a loaded template renders byte for byte like the one
// that was saved.
package template
