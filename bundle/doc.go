// Package bundle builds ready made elements for common LaTeX packages:
// tables, graphicx images and math symbols.
//
// Bundles only use the public element API. Anything they produce is a
// plain element (mostly Custom or Environment) and renders like any
// other.
package bundle

import (
	"errors"
	"strconv"
)

var ErrBundle = errors.New("bundle")

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
