package emit

import (
	"os"

	"go.uber.org/zap"
)

// FS is where rendered files go.
type FS interface {
	WriteFile(name string, data []byte) error
}

// OSFS writes to the local file system, creating or truncating files.
type OSFS struct {
	Perm os.FileMode
}

func (f OSFS) WriteFile(name string, data []byte) error {
	perm := f.Perm
	if perm == 0 {
		perm = 0644
	}
	return os.WriteFile(name, data, perm)
}

type Option func(*config)

type config struct {
	log *zap.Logger
	fs  FS
}

func newConfig(opts []Option) *config {
	c := &config{
		log: zap.NewNop(),
		fs:  OSFS{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func WithFS(fs FS) Option {
	return func(c *config) {
		if fs != nil {
			c.fs = fs
		}
	}
}
