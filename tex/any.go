package tex

import (
	"encoding/json"
	"slices"
)

// Any is the erased form of every variant.
//
// Value holds the canonical string of the element (a name, a path, the
// content of a text, the raw code of a custom element). The remaining
// optional fields are only meaningful for some types:
//
//   - HeaderLevel: HeaderType
//   - TextStyle: TextType
//   - ListKind, Items: ListType
//   - Elements: EnvironmentType
//
// The cached text is derivable from the fields while the element is
// unmodified. Once modified, the cached text is authoritative and the
// fields are kept for inspection only.
type Any struct {
	Value       string
	Type        Type
	Level       Level
	HeaderLevel *int
	TextStyle   *TextStyle
	ListKind    *ListKind
	Items       []Item
	Elements    []*Element

	latex    string
	modified bool
}

// Canonical renders a from its structured fields.
func (a *Any) Canonical() (string, error) {
	return render(a)
}

// Latex returns the cached text.
func (a *Any) Latex() string {
	return a.latex
}

func (a *Any) Modified() bool {
	return a.modified
}

func (a *Any) Modify(opts ...Option) error {
	s, err := rebase(a, opts)
	if err != nil {
		return err
	}
	a.latex = s
	a.modified = true
	return nil
}

func (a *Any) Clone() *Any {
	res := *a
	if a.HeaderLevel != nil {
		d := *a.HeaderLevel
		res.HeaderLevel = &d
	}
	if a.TextStyle != nil {
		s := *a.TextStyle
		res.TextStyle = &s
	}
	if a.ListKind != nil {
		k := *a.ListKind
		res.ListKind = &k
	}
	res.Items = slices.Clone(a.Items)
	if a.Elements != nil {
		res.Elements = make([]*Element, len(a.Elements))
		for i, e := range a.Elements {
			res.Elements[i] = e.Clone()
		}
	}
	return &res
}

type anyJSON struct {
	Value       string     `json:"value"`
	Latex       string     `json:"latex"`
	Type        Type       `json:"type"`
	Level       Level      `json:"level"`
	HeaderLevel *int       `json:"header_level,omitempty"`
	TextStyle   *TextStyle `json:"text_type,omitempty"`
	ListKind    *ListKind  `json:"list_type,omitempty"`
	Items       []Item     `json:"items,omitempty"`
	Elements    []*Element `json:"elements,omitempty"`
	Modified    bool       `json:"modified"`
}

func (a Any) MarshalJSON() ([]byte, error) {
	return json.Marshal(anyJSON{
		Value:       a.Value,
		Latex:       a.latex,
		Type:        a.Type,
		Level:       a.Level,
		HeaderLevel: a.HeaderLevel,
		TextStyle:   a.TextStyle,
		ListKind:    a.ListKind,
		Items:       a.Items,
		Elements:    a.Elements,
		Modified:    a.modified,
	})
}

func (a *Any) UnmarshalJSON(d []byte) error {
	var j anyJSON
	if err := json.Unmarshal(d, &j); err != nil {
		return err
	}
	*a = Any{
		Value:       j.Value,
		Type:        j.Type,
		Level:       j.Level,
		HeaderLevel: j.HeaderLevel,
		TextStyle:   j.TextStyle,
		ListKind:    j.ListKind,
		Items:       j.Items,
		Elements:    j.Elements,
		latex:       j.Latex,
		modified:    j.Modified,
	}
	return nil
}
