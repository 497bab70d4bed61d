package tex

import (
	"errors"
	"testing"
)

func TestModifyVariants(t *testing.T) {
	opts := []Option{Curly("An option")}
	tests := []struct {
		v    Variant
		want string
	}{
		{NewChapter("A chapter"), `\chapter{A chapter}{An option}`},
		{NewEnvironment("something"), "\\begin{something}{An option}\n\n\\end{something}"},
		{NewHeader("A header", 1), `\section{A header}{An option}`},
		{NewInput("foo", Document), `\input{foo}{An option}`},
		{NewPackage("bar"), `\usepackage{bar}{An option}`},
		{NewParagraph("A paragraph"), `\paragraph{A paragraph}{An option}`},
		{NewPart("A part"), `\part{A part}{An option}`},
		{NewCustom(`\foo`, Meta), `\foo{An option}`},
	}
	for _, tt := range tests {
		if err := tt.v.Modify(opts...); err != nil {
			t.Fatalf("Modify: %v", err)
		}
		if !tt.v.Modified() {
			t.Errorf("%q: expected modified", tt.want)
		}
		got, err := tt.v.Latex()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestModifyRebases(t *testing.T) {
	ch := NewChapter("A chapter")
	for i := 0; i < 2; i++ {
		if err := ch.Modify(Curly("opt")); err != nil {
			t.Fatal(err)
		}
		got, _ := ch.Latex()
		if got != `\chapter{A chapter}{opt}` {
			t.Fatalf("call %d: got %q", i+1, got)
		}
	}
}

func TestModifyOrder(t *testing.T) {
	txt := NewText("x", Bold)
	if err := txt.Modify(Square("a"), Curly("b"), Square("c")); err != nil {
		t.Fatal(err)
	}
	got, _ := txt.Latex()
	if want := `\textbf{x}[a]{b}[c]`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestModifyNoOptions(t *testing.T) {
	p := NewPart("p")
	if err := p.Modify(); err != nil {
		t.Fatal(err)
	}
	if !p.Modified() {
		t.Fatal("Modify with no options still latches modified")
	}
	if got, _ := p.Latex(); got != `\part{p}` {
		t.Errorf("got %q", got)
	}
}

func TestModifiedTextCarriedOver(t *testing.T) {
	ch := NewChapter("A chapter")
	if err := ch.Modify(Curly("opt")); err != nil {
		t.Fatal(err)
	}
	// the structured field is now stale on purpose
	ch.Name = "Renamed"
	e := MustElement(ch)
	if e.Latex() != `\chapter{A chapter}{opt}` {
		t.Errorf("got %q", e.Latex())
	}
	if !e.Modified() || !e.Value.Modified() {
		t.Errorf("element should carry the modified latch")
	}
	if e.Value.Value != "Renamed" {
		t.Errorf("value %q", e.Value.Value)
	}
}

func TestElementModify(t *testing.T) {
	e := MustElement(NewCustom(`\includegraphics{foo.png}`, Document))
	if err := e.Modify(Square("scale = 0.75")); err != nil {
		t.Fatal(err)
	}
	want := `\includegraphics{foo.png}[scale = 0.75]`
	if e.Latex() != want {
		t.Errorf("got %q, want %q", e.Latex(), want)
	}
	if e.Value.Latex() != want {
		t.Errorf("value text %q, want %q", e.Value.Latex(), want)
	}
	if err := e.Modify(Square("scale = 0.5")); err != nil {
		t.Fatal(err)
	}
	if want := `\includegraphics{foo.png}[scale = 0.5]`; e.Latex() != want {
		t.Errorf("re-modify: got %q, want %q", e.Latex(), want)
	}
}

func TestAnyModify(t *testing.T) {
	d := 2
	a := &Any{Type: HeaderType, Value: "h", HeaderLevel: &d}
	if err := a.Modify(Curly("x")); err != nil {
		t.Fatal(err)
	}
	if a.Latex() != `\subsection{h}{x}` {
		t.Errorf("got %q", a.Latex())
	}
	c, err := a.Canonical()
	if err != nil {
		t.Fatal(err)
	}
	if c != `\subsection{h}` {
		t.Errorf("canonical %q", c)
	}
}

func TestOptionString(t *testing.T) {
	if Curly("a").String() != "{a}" || Square("b").String() != "[b]" {
		t.Errorf("unexpected option strings %s %s", Curly("a"), Square("b"))
	}
}

func TestParseOptions(t *testing.T) {
	got, err := ParseOptions("{a}, [scale = 0.5] {b{c}}")
	if err != nil {
		t.Fatal(err)
	}
	want := []Option{Curly("a"), Square("scale = 0.5"), Curly("b{c}")}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option %d: got %v want %v", i, got[i], want[i])
		}
	}
	if got, err := ParseOptions(""); err != nil || len(got) != 0 {
		t.Errorf("empty: got %v, %v", got, err)
	}
	for _, bad := range []string{"a", "{a", "[a}"} {
		if _, err := ParseOptions(bad); !errors.Is(err, ErrBadOption) {
			t.Errorf("%q: got %v want ErrBadOption", bad, err)
		}
	}
}
