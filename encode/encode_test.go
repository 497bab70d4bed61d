package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/texcore/tex"

	"github.com/google/go-cmp/cmp"
)

func markers() *Colors {
	names := map[ColorAttr]string{
		CommandColor: "cmd",
		EnvColor:     "env",
		BraceColor:   "b",
		BracketColor: "k",
		MathColor:    "m",
		CommentColor: "c",
	}
	c := &Colors{Default: colorDefault, Map: map[ColorAttr]func(string, ...any) string{}}
	for a, n := range names {
		c.Map[a] = func(s string, _ ...any) string { return "<" + n + ">" + s + "</" + n + ">" }
	}
	return c
}

func sampleList() *tex.ElementList {
	l := tex.NewDefaultList()
	l.Push(tex.MustElement(tex.NewPackage("amsmath")))
	l.Push(tex.MustElement(tex.NewText("x", tex.Bold)))
	return l
}

func TestEncodePlain(t *testing.T) {
	l := sampleList()
	in := tex.NewInput("structure", tex.Meta)
	main, pkgs := l.LatexSplit(in)
	cases := []struct {
		name string
		opts []EncodeOption
		want string
	}{
		{"combined", nil, l.Latex() + "\n"},
		{"split", []EncodeOption{EncodeSplit(in)}, main + "\n"},
		{"packages", []EncodeOption{EncodeSplit(in), EncodePackages(true)}, pkgs + "\n"},
		{"packages only", []EncodeOption{EncodePackages(true)}, `\usepackage{amsmath}` + "\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(l, buf, c.opts...); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`\textbf{x}`, `<cmd>\textbf</cmd><b>{</b>x<b>}</b>`},
		{"\\begin{center}\n\\end{center}", "<env>\\begin</env><b>{</b>center<b>}</b>\n<env>\\end</env><b>{</b>center<b>}</b>"},
		{`a % note {x}` + "\nb", "a <c>% note {x}</c>\nb"},
		{`50\% off`, `50<cmd>\%</cmd> off`},
		{`$x$[opt]`, `<m>$</m>x<m>$</m><k>[</k>opt<k>]</k>`},
		{`\\ end`, `<cmd>\\</cmd> end`},
		{"trailing\\", "trailing<cmd>\\</cmd>"},
	}
	c := markers()
	for _, tc := range cases {
		if got := colorize(tc.in, c.Color); got != tc.want {
			t.Errorf("colorize(%q):\ngot  %q\nwant %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeColorsKeepsText(t *testing.T) {
	l := sampleList()
	got := MustString(l, EncodeColors(markers()))
	for _, tag := range []string{"cmd", "env", "b", "c", "m", "k"} {
		got = strings.ReplaceAll(got, "<"+tag+">", "")
		got = strings.ReplaceAll(got, "</"+tag+">", "")
	}
	if got != l.Latex() {
		t.Errorf("stripped colors differ from render:\n%s", got)
	}
}

func TestNewColorsEscapesPercent(t *testing.T) {
	c := NewColors()
	if got := c.Color(CommentColor, "% 100%"); !strings.Contains(got, "% 100%") {
		t.Errorf("got %q", got)
	}
	if got := c.Get(ColorAttr(99))("plain"); got != "plain" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeText(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := EncodeText(`\part{x}`, buf, EncodeColors(markers())); err != nil {
		t.Fatal(err)
	}
	if want := "<cmd>\\part</cmd><b>{</b>x<b>}</b>\n"; buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
	buf.Reset()
	if err := EncodeText("plain", buf); err != nil || buf.String() != "plain\n" {
		t.Errorf("got %q, %v", buf.String(), err)
	}
}
