package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "equal"
	}
}

// Hunk is a run of whole lines sharing one operation. Text keeps the line
// terminators.
type Hunk struct {
	Op   Op
	Text string
}

// Lines splits the text of h into lines, each with its terminator.
func (h Hunk) Lines() []string {
	res := strings.SplitAfter(h.Text, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Hunk {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	res := make([]Hunk, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		h := Hunk{Text: d.Text}
		switch d.Type {
		case diffpatch.DiffInsert:
			h.Op = Insert
		case diffpatch.DiffDelete:
			h.Op = Delete
		}
		res = append(res, h)
	}
	return res
}

// Same reports whether hunks describe no change.
func Same(hunks []Hunk) bool {
	for _, h := range hunks {
		if h.Op != Equal {
			return false
		}
	}
	return true
}

// Unified prints hunks with one prefix character per line and a two line
// header naming both sides.
func Unified(hunks []Hunk, fromName, toName string) string {
	b := &strings.Builder{}
	b.WriteString("--- " + fromName + "\n")
	b.WriteString("+++ " + toName + "\n")
	for _, h := range hunks {
		prefix := " "
		switch h.Op {
		case Insert:
			prefix = "+"
		case Delete:
			prefix = "-"
		}
		for _, l := range h.Lines() {
			b.WriteString(prefix + strings.TrimSuffix(l, "\n") + "\n")
		}
	}
	return b.String()
}

// Reverse turns a diff from a to b into a diff from b to a.
func Reverse(hunks []Hunk) []Hunk {
	res := make([]Hunk, len(hunks))
	for i, h := range hunks {
		switch h.Op {
		case Insert:
			h.Op = Delete
		case Delete:
			h.Op = Insert
		}
		res[i] = h
	}
	return res
}
