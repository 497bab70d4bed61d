package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/texcore/compile"
	"github.com/signadot/texcore/debug"
	"github.com/signadot/texcore/emit"
	"github.com/signadot/texcore/template"
	"github.com/signadot/texcore/tex"

	"go.uber.org/zap"
)

type Dir struct {
	Root     string
	Manifest *Manifest
	// Env is the manifest env merge patched with the env given to Open.
	Env map[string]any

	log      *zap.Logger
	compiler compile.Compiler
	workers  int
}

type Option func(*Dir)

func WithLogger(l *zap.Logger) Option {
	return func(d *Dir) {
		if l != nil {
			d.log = l
		}
	}
}

func WithCompiler(c compile.Compiler) Option {
	return func(d *Dir) { d.compiler = c }
}

// WithWorkers sets the size of the pool the outputs are written on.
func WithWorkers(n int) Option {
	return func(d *Dir) { d.workers = n }
}

// Open reads the manifest of the build directory at path. env overrides
// the manifest env.
func Open(path string, env map[string]any, opts ...Option) (*Dir, error) {
	if debug.Build() {
		debug.Logf("Open input env:\n%s\n", debug.JSON{V: env})
	}
	p, d, err := findManifest(path)
	if err != nil {
		return nil, err
	}
	m, err := parseManifest(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	dir := &Dir{
		Root:     path,
		Manifest: m,
		log:      zap.NewNop(),
		workers:  2,
	}
	for _, opt := range opts {
		opt(dir)
	}
	if dir.compiler == nil {
		dir.compiler = &compile.Exec{Log: dir.log}
	}
	dir.Env, err = MergeEnv(m.Env, env)
	if err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrManifest, err)
	}
	return dir, nil
}

// Result names the files a build produced.
type Result struct {
	Main      string
	Structure string
	PDF       string
}

func (d *Dir) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.Root, p)
}

func (d *Dir) out(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.Root, d.Manifest.DestDir, p)
}

// Template loads the template with the manifest metadata applied.
func (d *Dir) Template() (*template.Template, error) {
	t, err := template.Load(d.path(d.Manifest.Template))
	if err != nil {
		return nil, err
	}
	if len(d.Manifest.Metadata) != 0 {
		meta, err := applyMetadata(t.List().Metadata(), d.Manifest.Metadata, d.Env)
		if err != nil {
			return nil, err
		}
		t.ChangeMetadata(meta)
	}
	return t, nil
}

// Build renders the template into the destination directory and compiles
// it if the manifest names a pdf.
func (d *Dir) Build(ctx context.Context) (*Result, error) {
	t, err := d.Template()
	if err != nil {
		return nil, err
	}
	m := d.Manifest
	if m.DestDir != "" {
		if err := os.MkdirAll(d.out(""), 0755); err != nil {
			return nil, err
		}
	}
	res := &Result{Main: d.out(m.Main)}
	pool := emit.NewPool(d.workers, emit.WithLogger(d.log))
	if m.Split {
		res.Structure = d.out(m.Structure)
		err = pool.WriteSplit(ctx, t.List(), res.Main, res.Structure, tex.NewInput(m.Input, tex.Meta))
	} else {
		err = pool.Write(ctx, t.List(), res.Main)
	}
	if err != nil {
		return nil, err
	}
	d.log.Info("wrote template", zap.String("template", t.Name), zap.Stringer("version", t.Version), zap.String("main", res.Main))
	if m.PDF == "" {
		return res, nil
	}
	res.PDF = d.out(m.PDF)
	if err := compile.CompileFile(ctx, d.compiler, res.Main, res.PDF); err != nil {
		return nil, err
	}
	d.log.Info("compiled", zap.String("pdf", res.PDF))
	return res, nil
}
