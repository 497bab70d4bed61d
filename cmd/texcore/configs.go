package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/texcore/encode"
	"github.com/signadot/texcore/format"

	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug output'"`
	Workers int  `cli:"name=p aliases=workers desc='number of workers for rendering and writing'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	log *zap.Logger
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) workers() int {
	if cfg.Workers < 1 {
		return 2
	}
	return cfg.Workers
}

func (cfg *MainConfig) logger() *zap.Logger {
	if cfg.log == nil {
		return zap.NewNop()
	}
	return cfg.log
}

// colors reports whether output to w is colored: -color wins when given,
// otherwise a terminal gets colors.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.colors(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type RenderConfig struct {
	*MainConfig

	Split    string `cli:"name=split desc='render the main half of a split render with an input of this path'"`
	Packages bool   `cli:"name=packages desc='render the packages half of a split render'"`

	Render *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type WriteConfig struct {
	*MainConfig

	Split     bool   `cli:"name=split desc='write packages to a separate structure file'"`
	Structure string `cli:"name=structure desc='path of the structure file (default structure.tex next to the main file)'"`
	Input     string `cli:"name=input desc='input path placed in the main file (default the structure file without .tex)'"`
	Async     bool   `cli:"name=async desc='write with the async driver instead of the worker pool'"`
	Sync      bool   `cli:"name=sync desc='write on the calling goroutine'"`

	Write *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Split   bool `cli:"name=split desc='diff the main halves of split renders'"`

	Diff *cli.Command
}

type CompileConfig struct {
	*MainConfig
	Engine string `cli:"name=engine desc='LaTeX engine to run (default tectonic)'"`

	Compile *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Env map[string]any

	ShowEnv bool `cli:"name=s aliases=show desc='show environment'"`

	Build *cli.Command
}

type TemplateConfig struct {
	*MainConfig

	Template *cli.Command
}

type TemplateNewConfig struct {
	*MainConfig

	Description string `cli:"name=d aliases=desc desc='template description'"`
	Author      string `cli:"name=author desc='document author'"`
	Title       string `cli:"name=title desc='document title'"`
	Date        string `cli:"name=date desc='document date'"`
	Class       string `cli:"name=class desc='document class'"`
	Paper       string `cli:"name=paper desc='paper size'"`
	FontSize    int    `cli:"name=fontsize desc='font size in points'"`
	NoTitle     bool   `cli:"name=notitle desc='do not emit the title block'"`

	New *cli.Command
}

type TemplateShowConfig struct {
	*MainConfig
	OutFormat *format.Format

	Show *cli.Command
}

type TemplateAddConfig struct {
	*MainConfig

	Level   string `cli:"name=level desc='level of custom, comment and input elements: Meta, Packages, Document'"`
	Depth   int    `cli:"name=depth desc='header depth (default 1)'"`
	Style   string `cli:"name=style desc='text style (Bold, Italics, Normal, Math, Par) or Enumerated for lists'"`
	Options string `cli:"name=opts desc='extra options, a sequence of {arg} and [arg] groups'"`

	Add *cli.Command
}

type TemplatePatchConfig struct {
	*MainConfig
	JSONPatch bool `cli:"name=json desc='patch is an RFC 6902 JSON patch (default merge patch)'"`
	InPlace   bool `cli:"name=w desc='write the result back to the template file'"`

	Patch *cli.Command
}

type TemplateBumpConfig struct {
	*MainConfig
	Major bool   `cli:"name=major desc='bump the major version'"`
	Minor bool   `cli:"name=minor desc='bump the minor version'"`
	Patch bool   `cli:"name=patch desc='bump the patch version'"`
	Set   string `cli:"name=set desc='set the version, as vX.Y.Z'"`

	Bump *cli.Command
}

type SymbolsConfig struct {
	*MainConfig

	Symbols *cli.Command
}
