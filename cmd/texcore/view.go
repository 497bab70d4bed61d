package main

import (
	"fmt"
	"io"

	"github.com/signadot/texcore/encode"
	"github.com/signadot/texcore/template"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	ts, err := cfg.readTemplates(cc.In, args)
	if err != nil {
		return err
	}
	colors := &encode.Colors{Default: func(s string, _ ...any) string { return s }}
	if cfg.colors(cc.Out) {
		colors = encode.NewColors()
	}
	for _, t := range ts {
		if err := viewTemplate(cc.Out, t, colors); err != nil {
			return err
		}
	}
	return nil
}

func viewTemplate(w io.Writer, t *template.Template, colors *encode.Colors) error {
	meta := t.List().Metadata()
	_, err := fmt.Fprintf(w, "%s %s\n", colors.Color(encode.CommentColor, "% "+t.Name), t.Version)
	if err != nil {
		return err
	}
	if t.Description != "" {
		if _, err := fmt.Fprintln(w, colors.Color(encode.CommentColor, "% "+t.Description)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%s %s %dpt %s\n", colors.Color(encode.EnvColor, "meta"), meta.DocClass, meta.FontSize, meta.PaperSize)
	if err != nil {
		return err
	}
	i := 0
	for e := range t.List().All() {
		kind := fmt.Sprintf("%s@%s", e.Type, e.Level)
		if e.Modified() {
			kind += "*"
		}
		_, err := fmt.Fprintf(w, "%4d %s %s\n", i, colors.Color(encode.CommandColor, kind), e.Latex())
		if err != nil {
			return err
		}
		i++
	}
	return nil
}
