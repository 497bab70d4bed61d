package tex

import (
	"encoding/json"
	"fmt"
)

// Element is the envelope placed in an ElementList. It pairs an erased
// value with its type, its level and its cached text.
type Element struct {
	Value Any
	Type  Type
	Level Level

	latex    string
	modified bool
}

// NewElement converts a variant into an envelope. The text of a modified
// variant is carried over verbatim; otherwise the canonical rule runs.
// This is the only place that text is computed at creation time.
func NewElement(v Variant) (*Element, error) {
	a := v.toAny()
	if s, ok := v.cached(); ok {
		a.latex = s
		a.modified = true
		return wrap(a), nil
	}
	s, err := render(&a)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", a.Type, err)
	}
	a.latex = s
	return wrap(a), nil
}

// FromAny wraps an erased value built outside of a variant. The value is
// always rendered from its fields since it cannot carry modified text.
func FromAny(a Any) (*Element, error) {
	s, err := render(&a)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", a.Type, err)
	}
	a.latex = s
	a.modified = false
	return wrap(a), nil
}

func wrap(a Any) *Element {
	return &Element{
		Value:    a,
		Type:     a.Type,
		Level:    a.Level,
		latex:    a.latex,
		modified: a.modified,
	}
}

// MustElement is like NewElement but panics on error.
func MustElement(v Variant) *Element {
	e, err := NewElement(v)
	if err != nil {
		panic(err)
	}
	return e
}

// Elements converts each variant in order.
func Elements(vs ...Variant) ([]*Element, error) {
	res := make([]*Element, 0, len(vs))
	for i, v := range vs {
		e, err := NewElement(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res = append(res, e)
	}
	return res, nil
}

// Latex returns the cached text of e.
func (e *Element) Latex() string {
	return e.latex
}

func (e *Element) Modified() bool {
	return e.modified
}

// Modify re-renders e from its value and applies opts.
func (e *Element) Modify(opts ...Option) error {
	s, err := rebase(&e.Value, opts)
	if err != nil {
		return err
	}
	e.latex = s
	e.modified = true
	e.Value.latex = s
	e.Value.modified = true
	return nil
}

// Refresh recomputes the cached text of e and of its children from their
// fields. Modified text is authoritative and left alone.
func (e *Element) Refresh() error {
	for _, c := range e.Value.Elements {
		if err := c.Refresh(); err != nil {
			return err
		}
	}
	if e.modified {
		return nil
	}
	s, err := render(&e.Value)
	if err != nil {
		return fmt.Errorf("refreshing %s: %w", e.Type, err)
	}
	e.latex = s
	e.Value.latex = s
	return nil
}

func (e *Element) Clone() *Element {
	res := *e
	res.Value = *e.Value.Clone()
	return &res
}

func (e *Element) String() string {
	return e.Type.String() + "@" + e.Level.String() + ":" + e.latex
}

type elementJSON struct {
	Value    Any    `json:"value"`
	Type     Type   `json:"type"`
	Level    Level  `json:"level"`
	Latex    string `json:"latex"`
	Modified bool   `json:"modified"`
}

func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(elementJSON{
		Value:    e.Value,
		Type:     e.Type,
		Level:    e.Level,
		Latex:    e.latex,
		Modified: e.modified,
	})
}

// UnmarshalJSON decodes an envelope. The envelope type and level must
// match those of its value and modified text must be present. Unmodified
// text is recomputed from the fields rather than trusted.
func (e *Element) UnmarshalJSON(d []byte) error {
	var j elementJSON
	if err := json.Unmarshal(d, &j); err != nil {
		return err
	}
	if j.Type != j.Value.Type || j.Level != j.Value.Level {
		return fmt.Errorf("%w: envelope %s@%s holds %s@%s", ErrEnvelope,
			j.Type, j.Level, j.Value.Type, j.Value.Level)
	}
	if j.Modified && j.Latex == "" {
		return fmt.Errorf("%w: modified %s without text", ErrEnvelope, j.Type)
	}
	a := j.Value
	a.latex = j.Latex
	a.modified = j.Modified
	*e = *wrap(a)
	return e.Refresh()
}
