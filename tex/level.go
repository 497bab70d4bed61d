package tex

import "fmt"

// Level controls where a rendered element is placed in the output.
type Level int

const (
	Meta Level = iota
	Packages
	Document
)

func (l Level) String() string {
	s, ok := map[Level]string{
		Meta:     "Meta",
		Packages: "Packages",
		Document: "Document",
	}[l]
	if ok {
		return s
	}
	return "<unknown level>"
}

func (l Level) MarshalText() ([]byte, error) {
	if l < Meta || l > Document {
		return nil, fmt.Errorf("%w: %d", ErrBadLevel, int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(d []byte) error {
	ll, ok := map[string]Level{
		"Meta":     Meta,
		"Packages": Packages,
		"Document": Document,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadLevel, d)
	}
	*l = ll
	return nil
}

func Levels() []Level {
	return []Level{Meta, Packages, Document}
}
