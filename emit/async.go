package emit

import (
	"context"

	"github.com/signadot/texcore/tex"

	"go.uber.org/multierr"
)

// Future is the result of an asynchronous render or write.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func spawn[T any](f func() (T, error)) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(fut.done)
		fut.val, fut.err = f()
	}()
	return fut
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is ready or ctx is done. Giving up on a
// future does not stop its task.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Split is the pair of texts of a split render.
type Split struct {
	Main     string
	Packages string
}

// RenderAsync renders a snapshot of l. The text of each element is already
// cached, so no formatting rule runs on the task.
func RenderAsync(l *tex.ElementList) *Future[string] {
	snap := l.Clone()
	return spawn(func() (string, error) {
		return snap.Latex(), nil
	})
}

func RenderSplitAsync(l *tex.ElementList, in *tex.Input) *Future[Split] {
	snap := l.Clone()
	return spawn(func() (Split, error) {
		m, p := snap.LatexSplit(in)
		return Split{Main: m, Packages: p}, nil
	})
}

func WriteAsync(ctx context.Context, l *tex.ElementList, path string, opts ...Option) *Future[struct{}] {
	cfg := newConfig(opts)
	r := RenderAsync(l)
	return spawn(func() (struct{}, error) {
		s, err := r.Await(ctx)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, cfg.write(ctx, path, s)
	})
}

// WriteSplitAsync writes both halves of a split render as independent
// tasks and waits for both. The operation fails if either write fails and
// the returned error carries every failure.
func WriteSplitAsync(ctx context.Context, l *tex.ElementList, main, structure string, in *tex.Input, opts ...Option) *Future[struct{}] {
	cfg := newConfig(opts)
	r := RenderSplitAsync(l, in)
	return spawn(func() (struct{}, error) {
		s, err := r.Await(ctx)
		if err != nil {
			return struct{}{}, err
		}
		mainTask := spawn(func() (struct{}, error) {
			return struct{}{}, cfg.write(ctx, main, s.Main)
		})
		structTask := spawn(func() (struct{}, error) {
			return struct{}{}, cfg.write(ctx, structure, s.Packages)
		})
		<-mainTask.Done()
		<-structTask.Done()
		return struct{}{}, multierr.Combine(mainTask.err, structTask.err)
	})
}
