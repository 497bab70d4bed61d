package emit

import (
	"context"
	"fmt"

	"github.com/signadot/texcore/tex"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool runs renders and writes on at most N workers at a time. A Pool is
// safe for concurrent use. Lists are cloned before they enter the pool.
type Pool struct {
	cfg  *config
	n    int
	sema *semaphore.Weighted
}

func NewPool(n int, opts ...Option) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{
		cfg:  newConfig(opts),
		n:    n,
		sema: semaphore.NewWeighted(int64(n)),
	}
}

// Size is the number of workers.
func (p *Pool) Size() int {
	return p.n
}

func (p *Pool) run(ctx context.Context, f func() error) error {
	if err := p.sema.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sema.Release(1)
	return f()
}

func (p *Pool) Render(ctx context.Context, l *tex.ElementList) (string, error) {
	snap := l.Clone()
	var res string
	g := &errgroup.Group{}
	g.Go(func() error {
		return p.run(ctx, func() error {
			res = snap.Latex()
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	return res, nil
}

func (p *Pool) RenderSplit(ctx context.Context, l *tex.ElementList, in *tex.Input) (main, packages string, err error) {
	snap := l.Clone()
	g := &errgroup.Group{}
	g.Go(func() error {
		return p.run(ctx, func() error {
			main, packages = snap.LatexSplit(in)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return main, packages, nil
}

// RenderAll renders every list, at most Size at a time. The results are in
// the order of ls.
func (p *Pool) RenderAll(ctx context.Context, ls []*tex.ElementList) ([]string, error) {
	res := make([]string, len(ls))
	g, gCtx := errgroup.WithContext(ctx)
	for i, l := range ls {
		snap := l.Clone()
		g.Go(func() error {
			return p.run(gCtx, func() error {
				res[i] = snap.Latex()
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Pool) Write(ctx context.Context, l *tex.ElementList, path string) error {
	s, err := p.Render(ctx, l)
	if err != nil {
		return err
	}
	return p.run(ctx, func() error {
		return p.cfg.write(ctx, path, s)
	})
}

// WriteSplit renders on the pool, then writes both files on two workers
// and waits for both. Neither failure cancels the other write.
func (p *Pool) WriteSplit(ctx context.Context, l *tex.ElementList, main, structure string, in *tex.Input) error {
	m, s, err := p.RenderSplit(ctx, l, in)
	if err != nil {
		return err
	}
	var errs [2]error
	g := &errgroup.Group{}
	for i, w := range []struct{ path, text string }{{main, m}, {structure, s}} {
		g.Go(func() error {
			errs[i] = p.run(ctx, func() error {
				return p.cfg.write(ctx, w.path, w.text)
			})
			return nil
		})
	}
	_ = g.Wait()
	if err := multierr.Combine(errs[0], errs[1]); err != nil {
		p.cfg.log.Debug("split write failed", zap.Error(err))
		return fmt.Errorf("split write: %w", err)
	}
	return nil
}
