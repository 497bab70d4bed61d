package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "format of templates read from stdin: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "texcore").
		WithSynopsis("texcore [opts] command [opts]").
		WithDescription("texcore assembles LaTeX documents from templates of typed elements.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return texcoreMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			ViewCommand(cfg),
			WriteCommand(cfg),
			DiffCommand(cfg),
			CompileCommand(cfg),
			BuildCommand(cfg),
			TemplateCommand(cfg),
			SymbolsCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render [-split input] [-packages] [templates]").
		WithDescription("render templates as LaTeX").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [templates]").
		WithDescription("list the elements of templates with their type, level and text").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func WriteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WriteConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Write, "write").
		WithAliases("w").
		WithSynopsis("write [-split [-structure path] [-input path]] [-async|-sync] template main.tex").
		WithDescription("render a template to files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return write(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] [-split] a b").
		WithDescription("diff the renders of two templates, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func CompileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompileConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Compile, "compile").
		WithAliases("c").
		WithSynopsis("compile [-engine cmd] template|file.tex out.pdf").
		WithDescription("compile a template or a LaTeX file to pdf").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compileCmd(cfg, cc, args)
		})
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name: "e",
		Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
	})
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [dir] [-s] [-e path=val]...").
		WithDescription(buildDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

const buildDescription = `build renders a build directory, which defaults to the current directory.

Build looks for a file called 'build.{yaml,yml,json}' of the form

  build:
    # template file, relative to the build directory
    template: report.json
    # optional destination directory for the outputs
    destDir: out
    # main output, default main.tex
    main: main.tex
    # write packages to a separate file and \input it from main
    split: true
    structure: structure.tex
    # optional pdf, compiled with tectonic from main
    pdf: report.pdf
    env:
      quarter: Q3
    # metadata overrides, .[expr] values are expressions over env
    metadata:
      title: '.["Report " + quarter]'

Environment

The env can be set in 3 ways
1. in the env field of the manifest.
2. in the OS environment variable $TEXCORE_ENV, as a YAML object.
3. using '-e path=value'.

Later ways take precedence over earlier ones. Values are merged as JSON
merge patches, so a null value removes a key.

Show

build -s shows the environment and does not build.`

func TemplateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TemplateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Template, "template").
		WithAliases("t", "tpl").
		WithSynopsis("template <subcommand>").
		WithDescription("create, inspect and edit templates").
		WithSubs(
			TemplateNewCommand(mainCfg),
			TemplateShowCommand(mainCfg),
			TemplateAddCommand(mainCfg),
			TemplatePatchCommand(mainCfg),
			TemplateBumpCommand(mainCfg))
}

func TemplateNewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TemplateNewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.New, "new").
		WithSynopsis("new [opts] name file.{json,yaml}").
		WithDescription("create an empty template").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return templateNew(cfg, cc, args)
		})
}

func TemplateShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TemplateShowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: json/j, yaml/y (default yaml)",
		Type:        cli.NamedFuncOpt(mainCfg.fmtFunc(&cfg.OutFormat), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Show, "show").
		WithSynopsis("show [-O fmt] [templates]").
		WithDescription("print templates").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return templateShow(cfg, cc, args)
		})
}

func TemplateAddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TemplateAddConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Add, "add").
		WithSynopsis("add [-level l] [-depth n] [-style s] [-opts o] file type value").
		WithDescription("append an element to a template file in place").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return templateAdd(cfg, cc, args)
		})
}

func TemplatePatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TemplatePatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-json] [-w] patchfile template").
		WithDescription("apply a merge patch or JSON patch (JSON or YAML) to a template").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return templatePatch(cfg, cc, args)
		})
}

func TemplateBumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TemplateBumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Bump, "bump").
		WithSynopsis("bump -major|-minor|-patch|-set vX.Y.Z file").
		WithDescription("change the version of a template file in place").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return templateBump(cfg, cc, args)
		})
}

func SymbolsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SymbolsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Symbols, "symbols").
		WithAliases("sym").
		WithSynopsis("symbols [set]").
		WithDescription("list the math symbols of the greek, arrow, misc and binary sets").
		WithRun(func(cc *cli.Context, args []string) error {
			return symbols(cfg, cc, args)
		})
}
