package main

import (
	"fmt"

	"github.com/signadot/texcore/compile"
	"github.com/signadot/texcore/project"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = parseEnvExtras(cfg, cc, args)
	if err != nil {
		return err
	}
	dirPath := "."
	switch len(args) {
	case 0:
	case 1:
		dirPath = args[0]
	default:
		return fmt.Errorf("%w: build takes at most one directory", cli.ErrUsage)
	}
	env, err := project.LoadEnv()
	if err != nil {
		return err
	}
	env, err = project.MergeEnv(env, cfg.Env)
	if err != nil {
		return fmt.Errorf("error merging -e env: %w", err)
	}
	log := cfg.logger()
	dir, err := project.Open(dirPath, env,
		project.WithLogger(log),
		project.WithWorkers(cfg.workers()),
		project.WithCompiler(&compile.Exec{Log: log}))
	if err != nil {
		return err
	}
	if cfg.ShowEnv {
		d, err := yaml.Marshal(dir.Env)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	ctx, cancel := interruptContext()
	defer cancel()
	res, err := dir.Build(ctx)
	if err != nil {
		return fmt.Errorf("error building %s: %w", dirPath, err)
	}
	fmt.Fprintln(cc.Out, res.Main)
	if res.Structure != "" {
		fmt.Fprintln(cc.Out, res.Structure)
	}
	if res.PDF != "" {
		fmt.Fprintln(cc.Out, res.PDF)
	}
	return nil
}

// parseEnvExtras reads "key=val" arguments after "--" into the env, like
// repeated -e options.
func parseEnvExtras(cfg *BuildConfig, cc *cli.Context, args []string) ([]string, error) {
	delim := -1
	for i, arg := range args {
		if arg == "--" {
			delim = i
			break
		}
	}
	if delim == -1 {
		return args, nil
	}
	f := envOptTypeFunc(cfg.Env)
	for _, arg := range args[delim+1:] {
		if _, err := f(cc, arg); err != nil {
			return nil, err
		}
	}
	return args[:delim], nil
}
