package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/texcore/libdiff"
	"github.com/signadot/texcore/template"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := cfg.readTemplate(cc.In, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.readTemplate(cc.In, args[1])
	if err != nil {
		return err
	}
	fromName, toName := args[0], args[1]
	hunks := libdiff.Lines(cfg.diffText(from), cfg.diffText(to))
	if cfg.Reverse {
		hunks = libdiff.Reverse(hunks)
		fromName, toName = toName, fromName
	}
	if libdiff.Same(hunks) {
		return nil
	}
	if err := writeUnified(cc.Out, libdiff.Unified(hunks, fromName, toName), cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func (cfg *DiffConfig) diffText(t *template.Template) string {
	if cfg.Split {
		main, _ := t.List().LatexSplit(nil)
		return main
	}
	return t.Latex()
}

func writeUnified(w io.Writer, text string, colored bool) error {
	if !colored {
		_, err := io.WriteString(w, text)
		return err
	}
	b := &strings.Builder{}
	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(color.New(color.Bold).Sprint(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(color.GreenString("%s", line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(color.RedString("%s", line))
		default:
			b.WriteString(line)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
