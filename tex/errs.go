package tex

import (
	"errors"
	"fmt"
)

var (
	ErrHeaderLevel = errors.New("invalid header level")
	ErrUnknownType = errors.New("unknown element type")
	ErrBadLevel    = errors.New("bad level")
	ErrBadStyle    = errors.New("bad style")
	ErrBadOption   = errors.New("bad option")
	ErrEnvelope    = errors.New("malformed element")
)

// HeaderLevelError reports a header whose depth is below 1.
type HeaderLevelError struct {
	Name  string
	Depth int
}

func (e *HeaderLevelError) Unwrap() error {
	return ErrHeaderLevel
}

func (e *HeaderLevelError) Error() string {
	return fmt.Sprintf("%s: header %q has depth %d, want at least 1", ErrHeaderLevel, e.Name, e.Depth)
}
