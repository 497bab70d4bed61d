package bundle

import (
	"strings"

	"github.com/signadot/texcore/tex"
)

// Position is the alignment of a table column.
type Position struct {
	spec  byte
	width float64
}

var (
	Left     = Position{spec: 'l'}
	Right    = Position{spec: 'r'}
	Centered = Position{spec: 'c'}
)

// Paragraph is a top aligned paragraph column of width w.
func Paragraph(w float64) Position { return Position{spec: 'p', width: w} }

// Middle is a vertically centered paragraph column. It needs the array
// package.
func Middle(w float64) Position { return Position{spec: 'm', width: w} }

// Bottom is a bottom aligned paragraph column. It needs the array package.
func Bottom(w float64) Position { return Position{spec: 'b', width: w} }

func (p Position) Latex() string {
	switch p.spec {
	case 'p', 'm', 'b':
		return string(p.spec) + "{" + formatFloat(p.width) + "}"
	}
	return string(p.spec)
}

// Separator is the vertical rule left of a column.
type Separator int

const (
	SingleRule Separator = iota
	DoubleRule
	NoRule
)

func (s Separator) Latex() string {
	switch s {
	case SingleRule:
		return "|"
	case DoubleRule:
		return "||"
	default:
		return ""
	}
}

type Column struct {
	Pos Position
	Sep Separator
}

func NewColumn(pos Position, sep Separator) Column {
	return Column{Pos: pos, Sep: sep}
}

func (c Column) Latex() string {
	return c.Sep.Latex() + " " + c.Pos.Latex()
}

// ColumnSpec is the column argument of a tabular environment. It always
// closes with a single rule on the right.
func ColumnSpec(cols []Column) string {
	parts := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		parts = append(parts, c.Latex())
	}
	parts = append(parts, "|")
	return strings.Join(parts, " ")
}

// Row is one line of cells.
type Row []*tex.Element

// Rows makes one row per slice of cells.
func Rows(cells ...[]*tex.Element) []Row {
	res := make([]Row, len(cells))
	for i, c := range cells {
		res[i] = Row(c)
	}
	return res
}

// Latex joins the cached text of the cells with & and ends the line.
func (r Row) Latex() string {
	if len(r) == 0 {
		return `\\`
	}
	cells := make([]string, len(r))
	for i, e := range r {
		cells[i] = e.Latex()
	}
	return strings.Join(cells, " & ") + ` \\`
}

// Element is the row as a Normal text element.
func (r Row) Element() *tex.Element {
	return tex.MustElement(tex.NewText(r.Latex(), tex.Normal))
}

// Table is a tabular environment. With Extension it is tabular* and Width,
// if positive, is its width as a fraction of \textwidth. With Packages the
// array and tabularx packages are emitted before the table.
type Table struct {
	Width     float64
	Columns   []Column
	Rows      []Row
	Extension bool
	Packages  bool
}

func (t *Table) Environment() (*tex.Environment, error) {
	name := "tabular"
	if t.Extension {
		name = "tabular*"
	}
	env := tex.NewEnvironment(name)
	hline := tex.MustElement(tex.NewText(`\hline`, tex.Normal))
	for _, r := range t.Rows {
		env.Push(hline.Clone())
		env.Push(r.Element())
	}
	var opts []tex.Option
	if t.Extension && t.Width > 0 {
		opts = append(opts, tex.Curly(formatFloat(t.Width)+`\textwidth`))
	}
	opts = append(opts, tex.Curly(ColumnSpec(t.Columns)))
	if err := env.Modify(opts...); err != nil {
		return nil, err
	}
	return env, nil
}

// Elements is the table, preceded by its packages if requested.
func (t *Table) Elements() ([]*tex.Element, error) {
	env, err := t.Environment()
	if err != nil {
		return nil, err
	}
	if !t.Packages {
		return tex.Elements(env)
	}
	return tex.Elements(tex.NewPackage("array"), tex.NewPackage("tabularx"), env)
}
