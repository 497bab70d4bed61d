package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/texcore/format"
	"github.com/signadot/texcore/tex"

	"github.com/google/go-cmp/cmp"
)

func sample(t *testing.T) *Template {
	t.Helper()
	tp := New("report", "A quarterly report", tex.NewMetadata("Ada", "today", "Report", 12, "a4paper", "article", true))
	env := tex.NewEnvironment("center")
	env.Push(tex.MustElement(tex.NewText("centered", tex.Bold)))
	ch := tex.NewChapter("Intro")
	if err := ch.Modify(tex.Square("short")); err != nil {
		t.Fatal(err)
	}
	els, err := tex.Elements(
		tex.NewPart("One"),
		tex.NewPackage("amsmath"),
		ch,
		tex.NewHeader("Scope", 2),
		env,
		tex.NewList(tex.Enumerated, tex.NewItem("a"), tex.NewItem("b")),
		tex.NewText("x^2", tex.Math),
	)
	if err != nil {
		t.Fatal(err)
	}
	tp.PushElements(els)
	return tp
}

func TestVersion(t *testing.T) {
	v := NewVersion()
	if v.String() != "v1.0.0" {
		t.Fatalf("got %s", v)
	}
	for _, f := range []func() error{v.BumpMajor, v.BumpMinor, v.BumpMinor, v.BumpPatch} {
		if err := f(); err != nil {
			t.Fatal(err)
		}
	}
	if v.String() != "v2.2.1" {
		t.Errorf("got %s", v)
	}
	v.Set(0, 9, 255)
	if err := v.BumpPatch(); !errors.Is(err, ErrVersion) {
		t.Errorf("expected overflow error, got %v", err)
	}
	if v.String() != "v0.9.255" {
		t.Errorf("failed bump changed version to %s", v)
	}
	p, err := ParseVersion("v0.9.255")
	if err != nil || p != v {
		t.Errorf("parse: %v %v", p, err)
	}
	for _, bad := range []string{"1.2", "v1.2.x", "1.2.256"} {
		if _, err := ParseVersion(bad); !errors.Is(err, ErrVersion) {
			t.Errorf("%s: expected ErrVersion, got %v", bad, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tp := sample(t)
	if err := tp.Version.BumpMinor(); err != nil {
		t.Fatal(err)
	}
	for _, raw := range []string{"\ttab", "  lead", "trail\t", "a\n\tb", "true", "# hash"} {
		tp.PushElement(tex.MustElement(tex.NewCustom(raw, tex.Meta)))
	}
	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			d, err := Marshal(tp, f)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Unmarshal(d, f)
			if err != nil {
				t.Fatalf("%v\n%s", err, d)
			}
			if got.Name != tp.Name || got.Description != tp.Description || got.Version != tp.Version {
				t.Errorf("header mismatch: %+v", got)
			}
			if diff := cmp.Diff(tp.Latex(), got.Latex()); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
			if got.List().Len() != tp.List().Len() {
				t.Errorf("got %d elements", got.List().Len())
			}
		})
	}
}

func TestYAMLOutput(t *testing.T) {
	d, err := Marshal(sample(t), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(string(d), "{") || !strings.Contains(string(d), "name: report") {
		t.Errorf("expected block yaml, got:\n%s", d)
	}
}

func TestJSONKeys(t *testing.T) {
	d, err := Marshal(sample(t), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{`"name"`, `"description"`, `"version"`, `"element_list"`, `"metadata"`, `"major"`} {
		if !strings.Contains(string(d), k) {
			t.Errorf("missing key %s", k)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		f    format.Format
	}{
		{"truncated json", `{"name": "x"`, format.JSONFormat},
		{"missing list", `{"name": "x", "version": {"major": 1}}`, format.JSONFormat},
		{"bad level", `{"name":"x","element_list":{"metadata":{},"list":[{"value":{},"type":"Part","level":"Nowhere"}]}}`, format.JSONFormat},
		{"bad yaml", "name: [x\n", format.YAMLFormat},
		{"level mismatch", `{"name":"x","element_list":{"metadata":{},"list":[
			{"value":{"value":"amsmath","type":"Package","level":"Packages"},"type":"Package","level":"Document"}]}}`, format.JSONFormat},
		{"type mismatch", `{"name":"x","element_list":{"metadata":{},"list":[
			{"value":{"value":"A","type":"Chapter","level":"Document"},"type":"Part","level":"Document"}]}}`, format.JSONFormat},
		{"modified without text", `{"name":"x","element_list":{"metadata":{},"list":[
			{"value":{"value":"A","type":"Chapter","level":"Document"},"type":"Chapter","level":"Document","modified":true}]}}`, format.JSONFormat},
		{"missing metadata", `{"name":"x","element_list":{"list":[]}}`, format.JSONFormat},
		{"bad header depth", `{"name":"x","element_list":{"metadata":{},"list":[
			{"value":{"value":"H","type":"Header","level":"Document","header_level":0},"type":"Header","level":"Document"}]}}`, format.JSONFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tp, err := Unmarshal([]byte(c.in), c.f)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
			if tp != nil {
				t.Errorf("expected no template")
			}
		})
	}
}

func TestDecodeRecomputesText(t *testing.T) {
	in := `{"name":"x","element_list":{"metadata":{"fontsize":11,"papersize":"a4paper","doc_class":"article"},"list":[
		{"value":{"value":"Intro","type":"Chapter","level":"Document"},"type":"Chapter","level":"Document"},
		{"value":{"value":"amsmath","type":"Package","level":"Packages","latex":"stale"},"type":"Package","level":"Packages","latex":"stale"}]}}`
	tp, err := Unmarshal([]byte(in), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := tex.NewElementList(tex.NewMetadata("", "", "", 11, "a4paper", "article", false))
	want.PushArray([]*tex.Element{
		tex.MustElement(tex.NewChapter("Intro")),
		tex.MustElement(tex.NewPackage("amsmath")),
	})
	if diff := cmp.Diff(want.Latex(), tp.Latex()); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoad(t *testing.T) {
	tp := sample(t)
	dir := t.TempDir()
	for _, name := range []string{"t.json", "t.yaml"} {
		p := filepath.Join(dir, name)
		if err := Save(tp, p); err != nil {
			t.Fatal(err)
		}
		got, err := Load(p)
		if err != nil {
			t.Fatal(err)
		}
		if got.Latex() != tp.Latex() {
			t.Errorf("%s: render mismatch", name)
		}
	}
	if err := Save(tp, filepath.Join(dir, "t.txt")); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); !os.IsNotExist(err) {
		t.Errorf("expected not exist, got %v", err)
	}
}

func TestMergePatch(t *testing.T) {
	tp := sample(t)
	got, err := ApplyMergePatch(tp, []byte(`{"description": "changed", "element_list": {"metadata": {"title": "New Title"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "changed" {
		t.Errorf("description %q", got.Description)
	}
	if !strings.Contains(got.Latex(), `\title{New Title}`) {
		t.Errorf("title not patched:\n%s", got.Latex())
	}
	if want := strings.Replace(tp.Latex(), `\title{Report}`, `\title{New Title}`, 1); got.Latex() != want {
		t.Errorf("unexpected render:\n%s", got.Latex())
	}
	if tp.Description != "A quarterly report" {
		t.Errorf("original modified")
	}
}

func TestJSONPatch(t *testing.T) {
	tp := sample(t)
	patch := `[
		{"op": "replace", "path": "/element_list/list/0/value/value", "value": "Renamed"},
		{"op": "replace", "path": "/element_list/list/2/value/value", "value": "Ignored"},
		{"op": "replace", "path": "/version/minor", "value": 4}
	]`
	got, err := ApplyJSONPatch(tp, []byte(patch))
	if err != nil {
		t.Fatal(err)
	}
	if got.Version.String() != "v1.4.0" {
		t.Errorf("version %s", got.Version)
	}
	l := got.Latex()
	if !strings.Contains(l, `\part{Renamed}`) {
		t.Errorf("unmodified element not refreshed:\n%s", l)
	}
	if !strings.Contains(l, `\chapter{Intro}[short]`) {
		t.Errorf("modified element text lost:\n%s", l)
	}
}

func TestPatchErrors(t *testing.T) {
	tp := sample(t)
	if _, err := ApplyJSONPatch(tp, []byte(`{"op": "nope"}`)); !errors.Is(err, ErrPatch) {
		t.Errorf("bad patch: %v", err)
	}
	if _, err := ApplyJSONPatch(tp, []byte(`[{"op": "remove", "path": "/nowhere/deep"}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("bad path: %v", err)
	}
	if _, err := ApplyMergePatch(tp, []byte(`{"element_list": null}`)); !errors.Is(err, ErrDecode) {
		t.Errorf("dropped list: %v", err)
	}
}

func TestWriteTexFiles(t *testing.T) {
	tp := sample(t)
	dir := t.TempDir()
	main := filepath.Join(dir, "main.tex")
	structure := filepath.Join(dir, "structure.tex")
	in := tex.NewInput("structure", tex.Meta)
	if err := tp.WriteTexFiles(context.Background(), main, structure, in); err != nil {
		t.Fatal(err)
	}
	wantMain, wantPkgs := tp.List().LatexSplit(in)
	d, _ := os.ReadFile(main)
	if string(d) != wantMain {
		t.Errorf("main:\n%s", d)
	}
	d, _ = os.ReadFile(structure)
	if string(d) != wantPkgs || wantPkgs != `\usepackage{amsmath}` {
		t.Errorf("structure:\n%s", d)
	}
}

type fakeCompiler struct{ src string }

func (f *fakeCompiler) Compile(_ context.Context, src string) ([]byte, error) {
	f.src = src
	return []byte("pdf"), nil
}

func TestWriteThenCompile(t *testing.T) {
	tp := sample(t)
	dir := t.TempDir()
	main := filepath.Join(dir, "main.tex")
	pdf := filepath.Join(dir, "main.pdf")
	fc := &fakeCompiler{}
	in := tex.NewInput("structure", tex.Meta)
	if err := tp.WriteThenCompile(context.Background(), fc, main, filepath.Join(dir, "structure.tex"), in, pdf); err != nil {
		t.Fatal(err)
	}
	wantMain, _ := tp.List().LatexSplit(in)
	if fc.src != wantMain {
		t.Errorf("compiled %q", fc.src)
	}
	if d, _ := os.ReadFile(pdf); string(d) != "pdf" {
		t.Errorf("pdf %q", d)
	}
}
