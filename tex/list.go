package tex

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/signadot/texcore/debug"
)

// ElementList is a document: metadata plus an ordered sequence of
// elements. It behaves as a double ended queue.
type ElementList struct {
	metadata Metadata
	list     []*Element
}

// NewElementList creates an empty list with a copy of meta.
func NewElementList(meta *Metadata) *ElementList {
	return &ElementList{metadata: *meta}
}

func NewDefaultList() *ElementList {
	return NewElementList(DefaultMetadata())
}

// Push appends e at the back.
func (l *ElementList) Push(e *Element) {
	l.list = append(l.list, e)
}

// Pop removes the last element. It returns nil on an empty list.
func (l *ElementList) Pop() *Element {
	n := len(l.list)
	if n == 0 {
		return nil
	}
	e := l.list[n-1]
	l.list[n-1] = nil
	l.list = l.list[:n-1]
	return e
}

// PushFront inserts e at the front.
func (l *ElementList) PushFront(e *Element) {
	l.list = append(l.list, nil)
	copy(l.list[1:], l.list)
	l.list[0] = e
}

// PopFront removes the first element. It returns nil on an empty list.
func (l *ElementList) PopFront() *Element {
	if len(l.list) == 0 {
		return nil
	}
	e := l.list[0]
	l.list[0] = nil
	l.list = l.list[1:]
	return e
}

// PushArray appends each element in order.
func (l *ElementList) PushArray(es []*Element) {
	l.list = append(l.list, es...)
}

// AddNewPage appends a \newpage.
func (l *ElementList) AddNewPage() {
	l.Push(MustElement(NewText(`\newpage`, Normal)))
}

func (l *ElementList) Len() int {
	return len(l.list)
}

// All iterates over the elements front to back.
func (l *ElementList) All() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for _, e := range l.list {
			if !yield(e) {
				return
			}
		}
	}
}

// Metadata returns a copy of the list's metadata.
func (l *ElementList) Metadata() Metadata {
	return l.metadata
}

// ChangeMetadata replaces the metadata.
func (l *ElementList) ChangeMetadata(meta *Metadata) {
	l.metadata = *meta
}

// Refresh recomputes the cached text of every unmodified element, for
// instance after the fields of a decoded list were edited.
func (l *ElementList) Refresh() error {
	for i, e := range l.list {
		if err := e.Refresh(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// Clone returns a deep copy of l.
func (l *ElementList) Clone() *ElementList {
	res := &ElementList{metadata: l.metadata}
	if l.list != nil {
		res.list = make([]*Element, len(l.list))
		for i, e := range l.list {
			res.list[i] = e.Clone()
		}
	}
	return res
}

// Groups holds the cached text of every element bucketed by level, each
// in list order.
type Groups struct {
	Meta     []string
	Packages []string
	Document []string
}

// Partition buckets the elements by level. It is the single pass both
// renders are built on.
func (l *ElementList) Partition() Groups {
	var g Groups
	for _, e := range l.list {
		switch e.Level {
		case Meta:
			g.Meta = append(g.Meta, e.latex)
		case Packages:
			g.Packages = append(g.Packages, e.latex)
		default:
			g.Document = append(g.Document, e.latex)
		}
	}
	if debug.Render() {
		debug.Logf("partition: %d meta, %d packages, %d document\n",
			len(g.Meta), len(g.Packages), len(g.Document))
	}
	return g
}

func (l *ElementList) documentLines(g *Groups) []string {
	doc := make([]string, 0, len(g.Document)+3)
	doc = append(doc, beginDocument)
	if l.metadata.MakeTitle {
		doc = append(doc, makeTitle)
	}
	doc = append(doc, g.Document...)
	return append(doc, endDocument)
}

// Latex renders the whole document as one string: the metadata block and
// Meta elements, then the packages, then the document body.
func (l *ElementList) Latex() string {
	g := l.Partition()
	meta := append([]string{l.metadata.Latex()}, g.Meta...)
	return strings.Join([]string{
		strings.Join(meta, "\n"),
		strings.Join(g.Packages, "\n"),
		strings.Join(l.documentLines(&g), "\n"),
	}, "\n")
}

// LatexSplit renders the document without its packages, which are
// returned separately. The text of in, normally an \input of the packages
// file, is placed right after the metadata block. A nil in adds nothing.
func (l *ElementList) LatexSplit(in *Input) (main, packages string) {
	g := l.Partition()
	meta := []string{l.metadata.Latex()}
	if in != nil {
		meta = append(meta, in.line())
	}
	meta = append(meta, g.Meta...)
	main = strings.Join(meta, "\n") + "\n" + strings.Join(l.documentLines(&g), "\n")
	return main, strings.Join(g.Packages, "\n")
}

type listJSON struct {
	Metadata Metadata   `json:"metadata"`
	List     []*Element `json:"list"`
}

func (l *ElementList) MarshalJSON() ([]byte, error) {
	list := l.list
	if list == nil {
		list = []*Element{}
	}
	return json.Marshal(listJSON{Metadata: l.metadata, List: list})
}

func (l *ElementList) UnmarshalJSON(d []byte) error {
	var j struct {
		Metadata *Metadata  `json:"metadata"`
		List     []*Element `json:"list"`
	}
	if err := json.Unmarshal(d, &j); err != nil {
		return err
	}
	if j.Metadata == nil {
		return fmt.Errorf("%w: missing metadata", ErrEnvelope)
	}
	for i, e := range j.List {
		if e == nil {
			return fmt.Errorf("element %d is null", i)
		}
	}
	l.metadata = *j.Metadata
	l.list = j.List
	return nil
}
