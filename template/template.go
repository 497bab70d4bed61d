package template

import (
	"context"

	"github.com/signadot/texcore/compile"
	"github.com/signadot/texcore/emit"
	"github.com/signadot/texcore/tex"
)

// Template is a named, versioned element list. It is not safe for
// concurrent use.
type Template struct {
	Name        string
	Description string
	Version     Version

	list *tex.ElementList
}

// New creates an empty template at v1.0.0.
func New(name, description string, meta *tex.Metadata) *Template {
	return &Template{
		Name:        name,
		Description: description,
		Version:     NewVersion(),
		list:        tex.NewElementList(meta),
	}
}

func (t *Template) PushElement(e *tex.Element) {
	t.list.Push(e)
}

func (t *Template) PushElements(es []*tex.Element) {
	t.list.PushArray(es)
}

func (t *Template) ChangeMetadata(meta *tex.Metadata) {
	t.list.ChangeMetadata(meta)
}

// List returns the list the template owns. Changes to it are changes to
// the template.
func (t *Template) List() *tex.ElementList {
	return t.list
}

// Latex renders the template as a single document.
func (t *Template) Latex() string {
	return t.list.Latex()
}

// WriteTexFiles writes the split render of the template.
func (t *Template) WriteTexFiles(ctx context.Context, main, structure string, in *tex.Input, opts ...emit.Option) error {
	return emit.WriteSplit(ctx, t.list, main, structure, in, opts...)
}

// WriteThenCompile writes the split render and compiles main into pdf.
// Nothing is compiled when either write fails.
func (t *Template) WriteThenCompile(ctx context.Context, c compile.Compiler, main, structure string, in *tex.Input, pdf string, opts ...emit.Option) error {
	if err := t.WriteTexFiles(ctx, main, structure, in, opts...); err != nil {
		return err
	}
	return compile.CompileFile(ctx, c, main, pdf)
}
