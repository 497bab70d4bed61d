package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/signadot/texcore/emit"
	"github.com/signadot/texcore/project"
	"github.com/signadot/texcore/tex"

	"github.com/scott-cotton/cli"
)

func write(cfg *WriteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Write.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: write requires a template and a main file", cli.ErrUsage)
	}
	if cfg.Async && cfg.Sync {
		return fmt.Errorf("%w: cannot use -async and -sync together", cli.ErrUsage)
	}
	if !cfg.Split && (cfg.Structure != "" || cfg.Input != "") {
		return fmt.Errorf("%w: -structure and -input require -split", cli.ErrUsage)
	}
	t, err := cfg.readTemplate(cc.In, args[0])
	if err != nil {
		return err
	}
	main := args[1]
	l := t.List()
	ctx, cancel := interruptContext()
	defer cancel()
	opts := []emit.Option{emit.WithLogger(cfg.logger())}

	if !cfg.Split {
		switch {
		case cfg.Sync:
			return emit.Write(ctx, l, main, opts...)
		case cfg.Async:
			_, err := emit.WriteAsync(ctx, l, main, opts...).Await(ctx)
			return err
		default:
			return emit.NewPool(cfg.workers(), opts...).Write(ctx, l, main)
		}
	}
	structure, in := splitPaths(main, cfg.Structure, cfg.Input)
	switch {
	case cfg.Sync:
		return emit.WriteSplit(ctx, l, main, structure, in, opts...)
	case cfg.Async:
		_, err := emit.WriteSplitAsync(ctx, l, main, structure, in, opts...).Await(ctx)
		return err
	default:
		return emit.NewPool(cfg.workers(), opts...).WriteSplit(ctx, l, main, structure, in)
	}
}

// splitPaths resolves the structure file and the input line of a split
// write. The structure file defaults to structure.tex next to main and the
// input defaults to the structure file relative to main, without .tex.
func splitPaths(main, structure, input string) (string, *tex.Input) {
	dir := filepath.Dir(main)
	if structure == "" {
		structure = filepath.Join(dir, project.DefaultStructure)
	}
	if input == "" {
		rel, err := filepath.Rel(dir, structure)
		if err != nil {
			rel = structure
		}
		input = strings.TrimSuffix(filepath.ToSlash(rel), ".tex")
	}
	return structure, tex.NewInput(input, tex.Meta)
}
