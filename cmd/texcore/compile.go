package main

import (
	"fmt"
	"strings"

	"github.com/signadot/texcore/compile"

	"github.com/scott-cotton/cli"
)

func compileCmd(cfg *CompileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compile.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compile requires a source and an output pdf", cli.ErrUsage)
	}
	src, out := args[0], args[1]
	x := &compile.Exec{Command: cfg.Engine, Log: cfg.logger()}
	ctx, cancel := interruptContext()
	defer cancel()
	if strings.HasSuffix(src, ".tex") {
		return compile.CompileFile(ctx, x, src, out)
	}
	t, err := cfg.readTemplate(cc.In, src)
	if err != nil {
		return err
	}
	if err := compile.CompileList(ctx, x, t.List(), out); err != nil {
		return fmt.Errorf("error compiling %s: %w", t.Name, err)
	}
	cfg.logger().Info("compiled " + t.Name + " to " + out)
	return nil
}
