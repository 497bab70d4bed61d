package tex

import "fmt"

// Type tags the kind of an element. The set is closed: the single
// formatting rule in render.go switches over all of it.
type Type int

const (
	InputType Type = iota
	PackageType
	PartType
	ChapterType
	HeaderType
	ParagraphType
	TextType
	EnvironmentType
	ListType
	ItemType
	CustomType
	CommentType
)

var typeNames = map[Type]string{
	InputType:       "Input",
	PackageType:     "Package",
	PartType:        "Part",
	ChapterType:     "Chapter",
	HeaderType:      "Header",
	ParagraphType:   "Paragraph",
	TextType:        "Text",
	EnvironmentType: "Environment",
	ListType:        "List",
	ItemType:        "Item",
	CustomType:      "Custom",
	CommentType:     "Comment",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(s), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, d)
}

func Types() []Type {
	return []Type{
		InputType,
		PackageType,
		PartType,
		ChapterType,
		HeaderType,
		ParagraphType,
		TextType,
		EnvironmentType,
		ListType,
		ItemType,
		CustomType,
		CommentType,
	}
}

// TextStyle selects the template used for a Text element.
type TextStyle int

const (
	Bold TextStyle = iota
	Italics
	Normal
	Math
	Par
)

var styleNames = map[TextStyle]string{
	Bold:    "Bold",
	Italics: "Italics",
	Normal:  "Normal",
	Math:    "Math",
	Par:     "Par",
}

func (s TextStyle) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return "<unknown style>"
}

func (s TextStyle) MarshalText() ([]byte, error) {
	n, ok := styleNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadStyle, int(s))
	}
	return []byte(n), nil
}

func (s *TextStyle) UnmarshalText(d []byte) error {
	for ss, n := range styleNames {
		if n == string(d) {
			*s = ss
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrBadStyle, d)
}

// ListKind is either an itemize or an enumerate list.
type ListKind int

const (
	Itemized ListKind = iota
	Enumerated
)

func (k ListKind) String() string {
	switch k {
	case Itemized:
		return "Itemized"
	case Enumerated:
		return "Enumerated"
	default:
		return "<unknown list kind>"
	}
}

func (k ListKind) env() string {
	if k == Enumerated {
		return "enumerate"
	}
	return "itemize"
}

func (k ListKind) MarshalText() ([]byte, error) {
	switch k {
	case Itemized, Enumerated:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("%w: list kind %d", ErrBadStyle, int(k))
}

func (k *ListKind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "Itemized":
		*k = Itemized
	case "Enumerated":
		*k = Enumerated
	default:
		return fmt.Errorf("%w: list kind %q", ErrBadStyle, d)
	}
	return nil
}
