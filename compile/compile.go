// Package compile turns rendered documents into PDF by running an
// external LaTeX engine.
package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/signadot/texcore/debug"
	"github.com/signadot/texcore/tex"

	"go.uber.org/zap"
)

var ErrCompile = errors.New("compile failed")

// Compiler produces a PDF from LaTeX source.
type Compiler interface {
	Compile(ctx context.Context, src string) ([]byte, error)
}

// DirCompiler is a Compiler that can resolve \input and friends relative
// to a directory.
type DirCompiler interface {
	Compiler
	CompileIn(ctx context.Context, dir, src string) ([]byte, error)
}

// DefaultEngine is the engine Exec runs when none is set.
const DefaultEngine = "tectonic"

// Exec runs Command with Args followed by "--outdir <tmp> -", feeding the
// source on stdin, and reads <tmp>/texput.pdf.
type Exec struct {
	Command string
	Args    []string
	// Dir is the working directory of the engine. Empty means the
	// temporary output directory.
	Dir string
	Log *zap.Logger
}

func (x *Exec) Compile(ctx context.Context, src string) ([]byte, error) {
	return x.CompileIn(ctx, x.Dir, src)
}

func (x *Exec) CompileIn(ctx context.Context, dir, src string) ([]byte, error) {
	log := x.Log
	if log == nil {
		log = zap.NewNop()
	}
	command := x.Command
	if command == "" {
		command = DefaultEngine
	}
	tmp, err := os.MkdirTemp("", "texcore-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)
	if dir == "" {
		dir = tmp
	}
	args := append(append([]string{}, x.Args...), "--outdir", tmp, "-")
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(src)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	if debug.Compile() {
		debug.Logf("running %s %v in %s\n", command, args, dir)
	}
	log.Debug("compiling", zap.String("engine", command), zap.String("dir", dir))
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w\n%s", ErrCompile, command, err, tail(stderr.String(), 20))
	}
	pdf, err := os.ReadFile(filepath.Join(tmp, "texput.pdf"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s produced no pdf: %w", ErrCompile, command, err)
	}
	log.Debug("compiled", zap.Int("bytes", len(pdf)))
	return pdf, nil
}

func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// CompileList compiles the combined render of l and writes the PDF to out.
func CompileList(ctx context.Context, c Compiler, l *tex.ElementList, out string) error {
	pdf, err := c.Compile(ctx, l.Latex())
	if err != nil {
		return err
	}
	return os.WriteFile(out, pdf, 0644)
}

// CompileFile compiles the LaTeX file in and writes the PDF to out. A
// DirCompiler runs in the directory of in, so that a split document finds
// its structure file.
func CompileFile(ctx context.Context, c Compiler, in, out string) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	var pdf []byte
	if dc, ok := c.(DirCompiler); ok {
		pdf, err = dc.CompileIn(ctx, filepath.Dir(in), string(src))
	} else {
		pdf, err = c.Compile(ctx, string(src))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	return os.WriteFile(out, pdf, 0644)
}
