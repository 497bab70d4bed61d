package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/signadot/texcore/bundle"
	"github.com/signadot/texcore/encode"

	"github.com/scott-cotton/cli"
)

func symbols(cfg *SymbolsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Symbols.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: symbols takes at most one set", cli.ErrUsage)
	}
	set := ""
	if len(args) == 1 {
		set = args[0]
	}
	colors := &encode.Colors{Default: func(s string, _ ...any) string { return s }}
	if cfg.colors(cc.Out) {
		colors = encode.NewColors()
	}
	w := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	found := false
	for _, s := range bundle.Symbols() {
		if set != "" && s.Set != set {
			continue
		}
		found = true
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Set, s.Name,
			colors.Color(encode.CommandColor, s.Lower),
			colors.Color(encode.CommandColor, s.Upper))
	}
	if !found {
		return fmt.Errorf("%w: unknown symbol set %q", cli.ErrUsage, set)
	}
	return w.Flush()
}
