package main

import (
	"fmt"

	"github.com/signadot/texcore/emit"
	"github.com/signadot/texcore/encode"
	"github.com/signadot/texcore/template"
	"github.com/signadot/texcore/tex"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	ts, err := cfg.readTemplates(cc.In, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Split == "" && !cfg.Packages {
		return renderAll(cfg, cc, ts, opts)
	}
	if cfg.Split != "" {
		opts = append(opts, encode.EncodeSplit(tex.NewInput(cfg.Split, tex.Meta)))
	}
	if cfg.Packages {
		opts = append(opts, encode.EncodePackages(true))
	}
	for _, t := range ts {
		cfg.logger().Debug("rendering " + t.Name)
		if err := encode.Encode(t.List(), cc.Out, opts...); err != nil {
			return fmt.Errorf("error rendering %s: %w", t.Name, err)
		}
	}
	return nil
}

// renderAll renders the combined form of every template on the worker
// pool and prints them in argument order.
func renderAll(cfg *RenderConfig, cc *cli.Context, ts []*template.Template, opts []encode.EncodeOption) error {
	ls := make([]*tex.ElementList, len(ts))
	for i, t := range ts {
		ls[i] = t.List()
	}
	ctx, cancel := interruptContext()
	defer cancel()
	texts, err := emit.NewPool(cfg.workers(), emit.WithLogger(cfg.logger())).RenderAll(ctx, ls)
	if err != nil {
		return err
	}
	for i, text := range texts {
		if err := encode.EncodeText(text, cc.Out, opts...); err != nil {
			return fmt.Errorf("error rendering %s: %w", ts[i].Name, err)
		}
	}
	return nil
}
