package emit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/signadot/texcore/tex"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testLists() map[string]*tex.ElementList {
	single := tex.NewDefaultList()
	single.Push(tex.MustElement(tex.NewPart("only")))

	mixed := tex.NewElementList(tex.NewMetadata("A", "D", "T", 10, "a4paper", "report", true))
	els, err := tex.Elements(
		tex.NewPackage("amsmath"),
		tex.NewChapter("one"),
		tex.NewCustom(`\def\x{1}`, tex.Meta),
		tex.NewHeader("sec", 1),
		tex.NewPackage("hyperref"),
		tex.NewText("body", tex.Normal),
	)
	if err != nil {
		panic(err)
	}
	mixed.PushArray(els)
	return map[string]*tex.ElementList{
		"empty":  tex.NewDefaultList(),
		"single": single,
		"mixed":  mixed,
	}
}

func TestDriversMatchSingleThreaded(t *testing.T) {
	ctx := context.Background()
	pool := NewPool(3)
	in := tex.NewInput("structure", tex.Meta)
	for name, l := range testLists() {
		t.Run(name, func(t *testing.T) {
			want := l.Latex()
			wantMain, wantPkgs := l.LatexSplit(in)

			got, err := pool.Render(ctx, l)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("pool render (-want +got):\n%s", diff)
			}
			m, p, err := pool.RenderSplit(ctx, l, in)
			if err != nil {
				t.Fatal(err)
			}
			if m != wantMain || p != wantPkgs {
				t.Errorf("pool split mismatch:\n%q\n%q", m, p)
			}

			got, err = RenderAsync(l).Await(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("async render (-want +got):\n%s", diff)
			}
			s, err := RenderSplitAsync(l, in).Await(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if s.Main != wantMain || s.Packages != wantPkgs {
				t.Errorf("async split mismatch:\n%q\n%q", s.Main, s.Packages)
			}
		})
	}
}

func TestRenderAllKeepsOrder(t *testing.T) {
	var ls []*tex.ElementList
	var want []string
	for i := 0; i < 20; i++ {
		l := tex.NewDefaultList()
		l.Push(tex.MustElement(tex.NewChapter(strings.Repeat("x", i))))
		ls = append(ls, l)
		want = append(want, l.Latex())
	}
	got, err := NewPool(4).RenderAll(context.Background(), ls)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestWriters(t *testing.T) {
	ctx := context.Background()
	l := testLists()["mixed"]
	in := tex.NewInput("structure", tex.Meta)
	wantMain, wantPkgs := l.LatexSplit(in)
	log := zap.NewNop()

	writers := map[string]struct {
		single func(path string) error
		split  func(main, structure string) error
	}{
		"sync": {
			single: func(p string) error { return Write(ctx, l, p, WithLogger(log)) },
			split: func(m, s string) error {
				return WriteSplit(ctx, l, m, s, in, WithLogger(log))
			},
		},
		"pool": {
			single: func(p string) error { return NewPool(2, WithLogger(log)).Write(ctx, l, p) },
			split: func(m, s string) error {
				return NewPool(2, WithLogger(log)).WriteSplit(ctx, l, m, s, in)
			},
		},
		"async": {
			single: func(p string) error {
				_, err := WriteAsync(ctx, l, p, WithLogger(log)).Await(ctx)
				return err
			},
			split: func(m, s string) error {
				_, err := WriteSplitAsync(ctx, l, m, s, in, WithLogger(log)).Await(ctx)
				return err
			},
		},
	}
	for name, w := range writers {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			single := filepath.Join(dir, "doc.tex")
			if err := w.single(single); err != nil {
				t.Fatal(err)
			}
			if got := readFile(t, single); got != l.Latex() {
				t.Errorf("single file mismatch")
			}
			main := filepath.Join(dir, "main.tex")
			structure := filepath.Join(dir, "structure.tex")
			if err := w.split(main, structure); err != nil {
				t.Fatal(err)
			}
			if got := readFile(t, main); got != wantMain {
				t.Errorf("main file mismatch:\n%s", got)
			}
			if got := readFile(t, structure); got != wantPkgs {
				t.Errorf("structure file mismatch:\n%s", got)
			}
		})
	}
}

var errDisk = errors.New("disk full")

type failFS struct {
	fail map[string]bool

	mu      sync.Mutex
	written map[string]string
}

func (f *failFS) WriteFile(name string, data []byte) error {
	if f.fail[name] {
		return &os.PathError{Op: "write", Path: name, Err: errDisk}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.written == nil {
		f.written = map[string]string{}
	}
	f.written[name] = string(data)
	return nil
}

func TestSplitWriteFailures(t *testing.T) {
	ctx := context.Background()
	l := testLists()["mixed"]
	in := tex.NewInput("structure", tex.Meta)
	cases := []struct {
		name   string
		fail   map[string]bool
		writes []string
	}{
		{"main fails", map[string]bool{"main": true}, []string{"structure"}},
		{"structure fails", map[string]bool{"structure": true}, []string{"main"}},
		{"both fail", map[string]bool{"main": true, "structure": true}, nil},
	}
	drivers := map[string]func(fs FS) error{
		"sync": func(fs FS) error {
			return WriteSplit(ctx, l, "main", "structure", in, WithFS(fs))
		},
		"pool": func(fs FS) error {
			return NewPool(2, WithFS(fs)).WriteSplit(ctx, l, "main", "structure", in)
		},
		"async": func(fs FS) error {
			_, err := WriteSplitAsync(ctx, l, "main", "structure", in, WithFS(fs)).Await(ctx)
			return err
		},
	}
	for dName, drive := range drivers {
		for _, c := range cases {
			t.Run(dName+"/"+c.name, func(t *testing.T) {
				fs := &failFS{fail: c.fail}
				err := drive(fs)
				if err == nil {
					t.Fatal("expected failure")
				}
				if !errors.Is(err, errDisk) {
					t.Errorf("expected errDisk in %v", err)
				}
				for p := range c.fail {
					if !strings.Contains(err.Error(), "write "+p+":") {
						t.Errorf("failure of %s not reported in %q", p, err)
					}
				}
				for _, p := range c.writes {
					if _, ok := fs.written[p]; !ok {
						t.Errorf("%s should still be written", p)
					}
				}
			})
		}
	}
}

type countFS struct {
	cur, max atomic.Int32
}

func (f *countFS) WriteFile(string, []byte) error {
	n := f.cur.Add(1)
	for {
		m := f.max.Load()
		if n <= m || f.max.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	f.cur.Add(-1)
	return nil
}

func TestPoolBound(t *testing.T) {
	fs := &countFS{}
	p := NewPool(1, WithFS(fs))
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.WriteSplit(ctx, tex.NewDefaultList(), "a", "b", nil); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if got := fs.max.Load(); got != 1 {
		t.Errorf("max concurrent writes %d, want 1", got)
	}
}

func TestCanceledWrite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fs := &failFS{}
	l := tex.NewDefaultList()
	if err := Write(ctx, l, "x", WithFS(fs)); !errors.Is(err, context.Canceled) {
		t.Errorf("sync: got %v", err)
	}
	if err := NewPool(1, WithFS(fs)).Write(ctx, l, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("pool: got %v", err)
	}
	if _, err := WriteAsync(ctx, l, "x", WithFS(fs)).Await(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("async: got %v", err)
	}
	if len(fs.written) != 0 {
		t.Errorf("nothing should be written, got %v", fs.written)
	}
}
