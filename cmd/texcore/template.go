package main

import (
	"fmt"
	"os"

	"github.com/signadot/texcore/format"
	"github.com/signadot/texcore/template"
	"github.com/signadot/texcore/tex"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func templateNew(cfg *TemplateNewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: new requires a name and a file", cli.ErrUsage)
	}
	meta := tex.DefaultMetadata()
	for _, f := range []struct {
		dst *string
		v   string
	}{
		{&meta.Author, cfg.Author},
		{&meta.Title, cfg.Title},
		{&meta.Date, cfg.Date},
		{&meta.DocClass, cfg.Class},
		{&meta.PaperSize, cfg.Paper},
	} {
		if f.v != "" {
			*f.dst = f.v
		}
	}
	if cfg.FontSize != 0 {
		if cfg.FontSize < 0 || cfg.FontSize > 255 {
			return fmt.Errorf("%w: font size %d out of range", cli.ErrUsage, cfg.FontSize)
		}
		meta.FontSize = uint8(cfg.FontSize)
	}
	meta.MakeTitle = !cfg.NoTitle
	t := template.New(args[0], cfg.Description, meta)
	if err := template.Save(t, args[1]); err != nil {
		return err
	}
	cfg.logger().Info("created template " + t.Name + " in " + args[1])
	return nil
}

func templateShow(cfg *TemplateShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		return err
	}
	ts, err := cfg.readTemplates(cc.In, args)
	if err != nil {
		return err
	}
	f := format.YAMLFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	for i, t := range ts {
		d, err := template.Marshal(t, f)
		if err != nil {
			return err
		}
		if i > 0 && f.IsYAML() {
			d = append([]byte("---\n"), d...)
		}
		if len(d) == 0 || d[len(d)-1] != '\n' {
			d = append(d, '\n')
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}

func templateAdd(cfg *TemplateAddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: add requires a file, a type and a value", cli.ErrUsage)
	}
	path := args[0]
	t, err := template.Load(path)
	if err != nil {
		return err
	}
	v, err := cfg.variant(args[1], args[2:])
	if err != nil {
		return err
	}
	if cfg.Options != "" {
		opts, err := tex.ParseOptions(cfg.Options)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if err := v.Modify(opts...); err != nil {
			return err
		}
	}
	e, err := tex.NewElement(v)
	if err != nil {
		return err
	}
	t.PushElement(e)
	if err := template.Save(t, path); err != nil {
		return err
	}
	cfg.logger().Debug("added " + e.String())
	return nil
}

// variant builds the element of type typ from the remaining command line
// values. Lists take one item per value, environments wrap one normal
// text per value after the name.
func (cfg *TemplateAddConfig) variant(typ string, values []string) (tex.Variant, error) {
	var tt tex.Type
	if err := tt.UnmarshalText([]byte(typ)); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	level, err := cfg.level(tt)
	if err != nil {
		return nil, err
	}
	value := values[0]
	if len(values) > 1 && tt != tex.ListType && tt != tex.EnvironmentType {
		return nil, fmt.Errorf("%w: %s takes a single value", cli.ErrUsage, tt)
	}
	switch tt {
	case tex.InputType:
		return tex.NewInput(value, level), nil
	case tex.PackageType:
		return tex.NewPackage(value), nil
	case tex.PartType:
		return tex.NewPart(value), nil
	case tex.ChapterType:
		return tex.NewChapter(value), nil
	case tex.HeaderType:
		depth := cfg.Depth
		if depth == 0 {
			depth = 1
		}
		return tex.NewHeader(value, depth), nil
	case tex.ParagraphType:
		return tex.NewParagraph(value), nil
	case tex.TextType:
		style := tex.Normal
		if cfg.Style != "" {
			if err := style.UnmarshalText([]byte(cfg.Style)); err != nil {
				return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
			}
		}
		return tex.NewText(value, style), nil
	case tex.EnvironmentType:
		env := tex.NewEnvironment(value)
		for _, s := range values[1:] {
			env.Push(tex.MustElement(tex.NewText(s, tex.Normal)))
		}
		return env, nil
	case tex.ListType:
		items := make([]tex.Item, len(values))
		for i, s := range values {
			items[i] = tex.NewItem(s)
		}
		kind := tex.Itemized
		if cfg.Style == "Enumerated" {
			kind = tex.Enumerated
		}
		return tex.NewList(kind, items...), nil
	case tex.CustomType:
		return tex.NewCustom(value, level), nil
	case tex.CommentType:
		return tex.NewComment(value, level), nil
	default:
		return nil, fmt.Errorf("%w: cannot add a bare %s", cli.ErrUsage, tt)
	}
}

// level parses -level. Inputs default to Meta, everything else to
// Document.
func (cfg *TemplateAddConfig) level(tt tex.Type) (tex.Level, error) {
	if cfg.Level == "" {
		if tt == tex.InputType {
			return tex.Meta, nil
		}
		return tex.Document, nil
	}
	var l tex.Level
	if err := l.UnmarshalText([]byte(cfg.Level)); err != nil {
		return 0, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return l, nil
}

func templatePatch(cfg *TemplatePatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch file and a template", cli.ErrUsage)
	}
	if cfg.InPlace && args[1] == "-" {
		return fmt.Errorf("%w: cannot patch stdin in place", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	// JSON is YAML, so a single conversion serves both patch formats.
	patch, err := yaml.YAMLToJSON(d)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	t, err := cfg.readTemplate(cc.In, args[1])
	if err != nil {
		return err
	}
	if cfg.JSONPatch {
		t, err = template.ApplyJSONPatch(t, patch)
	} else {
		t, err = template.ApplyMergePatch(t, patch)
	}
	if err != nil {
		return err
	}
	if cfg.InPlace {
		return template.Save(t, args[1])
	}
	f := format.JSONFormat
	if args[1] != "-" {
		if f, err = format.FromPath(args[1]); err != nil {
			return err
		}
	} else if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	out, err := template.Marshal(t, f)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

func templateBump(cfg *TemplateBumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: bump requires a template file", cli.ErrUsage)
	}
	n := 0
	for _, b := range []bool{cfg.Major, cfg.Minor, cfg.Patch, cfg.Set != ""} {
		if b {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("%w: exactly one of -major, -minor, -patch and -set is required", cli.ErrUsage)
	}
	t, err := template.Load(args[0])
	if err != nil {
		return err
	}
	switch {
	case cfg.Major:
		err = t.Version.BumpMajor()
	case cfg.Minor:
		err = t.Version.BumpMinor()
	case cfg.Patch:
		err = t.Version.BumpPatch()
	default:
		var v template.Version
		v, err = template.ParseVersion(cfg.Set)
		if err == nil {
			t.Version = v
		}
	}
	if err != nil {
		return err
	}
	if err := template.Save(t, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, t.Version)
	return nil
}
