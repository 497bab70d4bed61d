package emit

import (
	"context"

	"github.com/signadot/texcore/debug"
	"github.com/signadot/texcore/tex"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Write renders l and writes it to path.
func Write(ctx context.Context, l *tex.ElementList, path string, opts ...Option) error {
	cfg := newConfig(opts)
	return cfg.write(ctx, path, l.Latex())
}

// WriteSplit writes the document without packages to main and the packages
// to structure. in is placed after the metadata block of main.
func WriteSplit(ctx context.Context, l *tex.ElementList, main, structure string, in *tex.Input, opts ...Option) error {
	cfg := newConfig(opts)
	m, s := l.LatexSplit(in)
	return multierr.Combine(
		cfg.write(ctx, main, m),
		cfg.write(ctx, structure, s))
}

func (c *config) write(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if debug.Write() {
		debug.Logf("writing %d bytes to %s\n", len(text), path)
	}
	if err := c.fs.WriteFile(path, []byte(text)); err != nil {
		c.log.Debug("write failed", zap.String("path", path), zap.Error(err))
		return err
	}
	c.log.Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(text)))
	return nil
}
