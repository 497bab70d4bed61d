package tex

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Variant is a typed element that can be converted into an Element with
// NewElement. The set of variants is closed.
type Variant interface {
	Modifier
	// Latex returns the current text: the modified text if Modify has been
	// called, the canonical rendering otherwise.
	Latex() (string, error)
	Modified() bool

	toAny() Any
	cached() (string, bool)
}

type cache struct {
	latex    string
	modified bool
}

func (c *cache) Modified() bool {
	return c.modified
}

func (c *cache) cached() (string, bool) {
	return c.latex, c.modified
}

func current(v Variant, c *cache) (string, error) {
	if c.modified {
		return c.latex, nil
	}
	a := v.toAny()
	return render(&a)
}

func modify(v Variant, c *cache, opts []Option) error {
	a := v.toAny()
	s, err := rebase(&a, opts)
	if err != nil {
		return err
	}
	c.latex = s
	c.modified = true
	return nil
}

// Input is \input{path}.
type Input struct {
	Path  string
	Level Level
	cache
}

func NewInput(path string, level Level) *Input {
	return &Input{Path: path, Level: level}
}

func (in *Input) toAny() Any {
	return Any{Value: in.Path, Type: InputType, Level: in.Level}
}

func (in *Input) Latex() (string, error)      { return current(in, &in.cache) }
func (in *Input) Modify(opts ...Option) error { return modify(in, &in.cache, opts) }

// line is the text of in; an input reference never fails to render.
func (in *Input) line() string {
	if in.modified {
		return in.latex
	}
	a := in.toAny()
	s, _ := render(&a)
	return s
}

// Package is \usepackage{name}. Packages are always placed at the
// Packages level.
type Package struct {
	Name string
	cache
}

func NewPackage(name string) *Package {
	return &Package{Name: name}
}

func (p *Package) toAny() Any {
	return Any{Value: p.Name, Type: PackageType, Level: Packages}
}

func (p *Package) Latex() (string, error)      { return current(p, &p.cache) }
func (p *Package) Modify(opts ...Option) error { return modify(p, &p.cache, opts) }

// Part is \part{name}.
type Part struct {
	Name string
	cache
}

func NewPart(name string) *Part {
	return &Part{Name: name}
}

func (p *Part) toAny() Any {
	return Any{Value: p.Name, Type: PartType, Level: Document}
}

func (p *Part) Latex() (string, error)      { return current(p, &p.cache) }
func (p *Part) Modify(opts ...Option) error { return modify(p, &p.cache, opts) }

// Chapter is \chapter{name}.
type Chapter struct {
	Name string
	cache
}

func NewChapter(name string) *Chapter {
	return &Chapter{Name: name}
}

func (c *Chapter) toAny() Any {
	return Any{Value: c.Name, Type: ChapterType, Level: Document}
}

func (c *Chapter) Latex() (string, error)      { return current(c, &c.cache) }
func (c *Chapter) Modify(opts ...Option) error { return modify(c, &c.cache, opts) }

// Header is a sectioning command. Depth 1 is \section, depth 2
// \subsection and so on.
type Header struct {
	Name  string
	Depth int
	cache
}

func NewHeader(name string, depth int) *Header {
	return &Header{Name: name, Depth: depth}
}

func (h *Header) toAny() Any {
	d := h.Depth
	return Any{Value: h.Name, Type: HeaderType, Level: Document, HeaderLevel: &d}
}

func (h *Header) Latex() (string, error)      { return current(h, &h.cache) }
func (h *Header) Modify(opts ...Option) error { return modify(h, &h.cache, opts) }

// Paragraph is \paragraph{content}.
type Paragraph struct {
	Content string
	cache
}

func NewParagraph(content string) *Paragraph {
	return &Paragraph{Content: content}
}

func (p *Paragraph) toAny() Any {
	return Any{Value: p.Content, Type: ParagraphType, Level: Document}
}

func (p *Paragraph) Latex() (string, error)      { return current(p, &p.cache) }
func (p *Paragraph) Modify(opts ...Option) error { return modify(p, &p.cache, opts) }

// Text is inline content in one of the TextStyle templates.
type Text struct {
	Content string
	Style   TextStyle
	cache
}

func NewText(content string, style TextStyle) *Text {
	return &Text{Content: content, Style: style}
}

func (t *Text) toAny() Any {
	s := t.Style
	return Any{Value: t.Content, Type: TextType, Level: Document, TextStyle: &s}
}

func (t *Text) Latex() (string, error)      { return current(t, &t.cache) }
func (t *Text) Modify(opts ...Option) error { return modify(t, &t.cache, opts) }

// Environment is \begin{name} ... \end{name} around child elements. The
// children are rendered through their own cached text.
type Environment struct {
	Name     string
	Elements []*Element
	cache
}

func NewEnvironment(name string) *Environment {
	return &Environment{Name: name}
}

func (e *Environment) Push(el *Element) {
	e.Elements = append(e.Elements, el)
}

func (e *Environment) SetElements(els []*Element) {
	e.Elements = els
}

// InnerLatex joins the cached text of the children.
func (e *Environment) InnerLatex() string {
	inner := make([]string, 0, len(e.Elements))
	for _, el := range e.Elements {
		inner = append(inner, el.Latex())
	}
	return strings.Join(inner, "\n")
}

func (e *Environment) toAny() Any {
	children := make([]*Element, len(e.Elements))
	for i, el := range e.Elements {
		children[i] = el.Clone()
	}
	return Any{Value: e.Name, Type: EnvironmentType, Level: Document, Elements: children}
}

func (e *Environment) Latex() (string, error)      { return current(e, &e.cache) }
func (e *Environment) Modify(opts ...Option) error { return modify(e, &e.cache, opts) }

// Custom is raw LaTeX placed at a caller chosen level. Its validity is the
// caller's responsibility.
type Custom struct {
	Raw   string
	Level Level
	cache
}

func NewCustom(raw string, level Level) *Custom {
	return &Custom{Raw: raw, Level: level}
}

func (c *Custom) toAny() Any {
	return Any{Value: c.Raw, Type: CustomType, Level: c.Level}
}

func (c *Custom) Latex() (string, error)      { return current(c, &c.cache) }
func (c *Custom) Modify(opts ...Option) error { return modify(c, &c.cache, opts) }

// Comment is a % line comment.
type Comment struct {
	Text  string
	Level Level
	cache
}

func NewComment(text string, level Level) *Comment {
	return &Comment{Text: text, Level: level}
}

func (c *Comment) toAny() Any {
	return Any{Value: c.Text, Type: CommentType, Level: c.Level}
}

func (c *Comment) Latex() (string, error)      { return current(c, &c.cache) }
func (c *Comment) Modify(opts ...Option) error { return modify(c, &c.cache, opts) }

// List is an itemize or enumerate environment.
type List struct {
	Kind  ListKind
	Items []Item
	cache
}

func NewList(kind ListKind, items ...Item) *List {
	return &List{Kind: kind, Items: items}
}

func (l *List) toAny() Any {
	k := l.Kind
	items := make([]Item, len(l.Items))
	copy(items, l.Items)
	return Any{Type: ListType, Level: Document, ListKind: &k, Items: items}
}

func (l *List) Latex() (string, error)      { return current(l, &l.cache) }
func (l *List) Modify(opts ...Option) error { return modify(l, &l.cache, opts) }

// Item is one \item line.
type Item struct {
	Label string
	cache
}

func NewItem(label string) Item {
	return Item{Label: label}
}

func (it *Item) toAny() Any {
	return Any{Value: it.Label, Type: ItemType, Level: Document}
}

func (it *Item) Latex() (string, error)      { return current(it, &it.cache) }
func (it *Item) Modify(opts ...Option) error { return modify(it, &it.cache, opts) }

// line is the text of it inside a list. Options applied to the item are
// kept.
func (it *Item) line() string {
	if it.modified {
		return it.latex
	}
	a := it.toAny()
	s, _ := render(&a)
	return s
}

type itemJSON struct {
	Label    string `json:"name"`
	Latex    string `json:"latex,omitempty"`
	Modified bool   `json:"modified,omitempty"`
}

func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{Label: it.Label, Latex: it.latex, Modified: it.modified})
}

func (it *Item) UnmarshalJSON(d []byte) error {
	var j itemJSON
	if err := json.Unmarshal(d, &j); err != nil {
		return err
	}
	if j.Modified && j.Latex == "" {
		return fmt.Errorf("%w: modified item %q without text", ErrEnvelope, j.Label)
	}
	*it = Item{Label: j.Label}
	if j.Modified {
		it.latex, it.modified = j.Latex, true
	}
	return nil
}
