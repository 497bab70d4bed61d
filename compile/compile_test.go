package compile

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/signadot/texcore/tex"
)

type fakeCompiler struct {
	got string
	err error
}

func (f *fakeCompiler) Compile(_ context.Context, src string) ([]byte, error) {
	f.got = src
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF " + src), nil
}

func TestCompileList(t *testing.T) {
	l := tex.NewDefaultList()
	l.Push(tex.MustElement(tex.NewChapter("c")))
	out := filepath.Join(t.TempDir(), "out.pdf")
	fc := &fakeCompiler{}
	if err := CompileList(context.Background(), fc, l, out); err != nil {
		t.Fatal(err)
	}
	if fc.got != l.Latex() {
		t.Errorf("compiler got %q", fc.got)
	}
	d, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "%PDF "+l.Latex() {
		t.Errorf("wrong pdf %q", d)
	}
}

func TestCompileListError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	boom := errors.New("boom")
	err := CompileList(context.Background(), &fakeCompiler{err: boom}, tex.NewDefaultList(), out)
	if !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("no pdf expected, stat: %v", err)
	}
}

func shExec(t *testing.T, script string) *Exec {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("needs sh")
	}
	// sh -c script sh --outdir <tmp> -
	return &Exec{Command: "sh", Args: []string{"-c", script, "sh"}}
}

func TestExec(t *testing.T) {
	x := shExec(t, `cat > "$2/texput.pdf"`)
	pdf, err := x.Compile(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if string(pdf) != "hello" {
		t.Errorf("got %q", pdf)
	}
}

func TestExecFailure(t *testing.T) {
	x := shExec(t, `echo bad input >&2; exit 3`)
	_, err := x.Compile(context.Background(), "x")
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("expected ErrCompile, got %v", err)
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) || ee.ExitCode() != 3 {
		t.Errorf("expected exit status 3, got %v", err)
	}
}

func TestExecNoOutput(t *testing.T) {
	x := shExec(t, `cat > /dev/null`)
	if _, err := x.Compile(context.Background(), "x"); !errors.Is(err, ErrCompile) {
		t.Errorf("expected ErrCompile, got %v", err)
	}
}

func TestCompileFileRunsInSourceDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "structure.tex"), []byte("pkgs"), 0644); err != nil {
		t.Fatal(err)
	}
	main := filepath.Join(dir, "main.tex")
	if err := os.WriteFile(main, []byte("main+"), 0644); err != nil {
		t.Fatal(err)
	}
	x := shExec(t, `{ cat; cat structure.tex; } > "$2/texput.pdf"`)
	out := filepath.Join(dir, "main.pdf")
	if err := CompileFile(context.Background(), x, main, out); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "main+pkgs" {
		t.Errorf("got %q", d)
	}
}
