package main

import (
	"fmt"
	"io"

	"github.com/signadot/texcore/format"
	"github.com/signadot/texcore/template"
)

// readTemplate reads a template from a file, or from cc.In when path is
// "-". Files are decoded by extension and stdin by -I, default JSON.
func (cfg *MainConfig) readTemplate(in io.Reader, path string) (*template.Template, error) {
	if path != "-" {
		t, err := template.Load(path)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", path, err)
		}
		return t, nil
	}
	d, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	f := format.JSONFormat
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	t, err := template.Unmarshal(d, f)
	if err != nil {
		return nil, fmt.Errorf("error decoding stdin: %w", err)
	}
	return t, nil
}

// readTemplates reads every path in args, or stdin when args is empty.
func (cfg *MainConfig) readTemplates(in io.Reader, args []string) ([]*template.Template, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]*template.Template, 0, len(args))
	for _, arg := range args {
		t, err := cfg.readTemplate(in, arg)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}
