package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/texcore/tex"
)

type EncState struct {
	split    bool
	packages bool
	input    *tex.Input

	Color func(ColorAttr, string) string
}

// Encode writes the render of l selected by opts, followed by a newline.
func Encode(l *tex.ElementList, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	text := l.Latex()
	if es.split {
		main, pkgs := l.LatexSplit(es.input)
		text = main
		if es.packages {
			text = pkgs
		}
	}
	return es.write(w, text)
}

// EncodeText writes text, already rendered, with the colors of opts.
// Split options do not apply.
func EncodeText(text string, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.write(w, text)
}

func (es *EncState) write(w io.Writer, text string) error {
	if es.Color != nil {
		text = colorize(text, es.Color)
	}
	return writeString(w, text+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func MustString(l *tex.ElementList, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(l, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// colorize highlights commands, delimiters and comments line by line. An
// unescaped % colors the rest of its line.
func colorize(text string, color func(ColorAttr, string) string) string {
	b := &strings.Builder{}
	var plain strings.Builder
	flush := func() {
		b.WriteString(plain.String())
		plain.Reset()
	}
	for i := 0; i < len(text); {
		c := text[i]
		switch c {
		case '\\':
			j := i + 1
			for j < len(text) && isLetter(text[j]) {
				j++
			}
			if j == i+1 && j < len(text) && text[j] != '\n' {
				j++
			}
			cmd := text[i:j]
			flush()
			if cmd == `\begin` || cmd == `\end` {
				b.WriteString(color(EnvColor, cmd))
			} else {
				b.WriteString(color(CommandColor, cmd))
			}
			i = j
			continue
		case '%':
			j := strings.IndexByte(text[i:], '\n')
			if j < 0 {
				j = len(text) - i
			}
			flush()
			b.WriteString(color(CommentColor, text[i:i+j]))
			i += j
			continue
		case '{', '}':
			flush()
			b.WriteString(color(BraceColor, string(c)))
		case '[', ']':
			flush()
			b.WriteString(color(BracketColor, string(c)))
		case '$':
			flush()
			b.WriteString(color(MathColor, string(c)))
		default:
			plain.WriteByte(c)
		}
		i++
	}
	flush()
	return b.String()
}
