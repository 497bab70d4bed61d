package project

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/signadot/texcore/debug"
	"github.com/signadot/texcore/tex"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
)

const EnvEnv = "TEXCORE_ENV"

// LoadEnv reads a YAML object from $TEXCORE_ENV. An unset variable yields
// a nil env.
func LoadEnv() (map[string]any, error) {
	v := os.Getenv(EnvEnv)
	if v == "" {
		return nil, nil
	}
	var env map[string]any
	if err := yaml.Unmarshal([]byte(v), &env); err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	if env == nil {
		return nil, fmt.Errorf("error decoding env $%s: not an object", EnvEnv)
	}
	if debug.Build() {
		debug.Logf("loaded env from env: %s\n", debug.JSON{V: env})
	}
	return env, nil
}

// MergeEnv merge patches dst with p. A null in p removes the key. Neither
// argument is modified.
func MergeEnv(dst, p map[string]any) (map[string]any, error) {
	if dst == nil {
		dst = map[string]any{}
	}
	if p == nil {
		p = map[string]any{}
	}
	doc, err := json.Marshal(dst)
	if err != nil {
		return nil, err
	}
	patch, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}
	res := map[string]any{}
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func isExpr(s string) bool {
	return strings.HasPrefix(s, ".[") && strings.HasSuffix(s, "]")
}

func exprOpts(env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func evalValue(v any, env map[string]any) (any, error) {
	s, ok := v.(string)
	if !ok || !isExpr(s) {
		return v, nil
	}
	raw := s[2 : len(s)-1]
	program, err := expr.Compile(raw, exprOpts(env)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", raw, err)
	}
	res, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", raw, err)
	}
	return res, nil
}

// applyMetadata overrides fields of meta, named by their JSON keys, with
// the evaluated values of over.
func applyMetadata(meta tex.Metadata, over, env map[string]any) (*tex.Metadata, error) {
	d, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	cur := map[string]any{}
	if err := json.Unmarshal(d, &cur); err != nil {
		return nil, err
	}
	for _, k := range slices.Sorted(maps.Keys(over)) {
		if _, ok := cur[k]; !ok {
			return nil, fmt.Errorf("%w: unknown metadata field %q", ErrManifest, k)
		}
		v, err := evalValue(over[k], env)
		if err != nil {
			return nil, fmt.Errorf("%w: metadata %s: %w", ErrManifest, k, err)
		}
		cur[k] = v
	}
	if d, err = json.Marshal(cur); err != nil {
		return nil, fmt.Errorf("%w: metadata: %w", ErrManifest, err)
	}
	res := &tex.Metadata{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, fmt.Errorf("%w: metadata: %w", ErrManifest, err)
	}
	return res, nil
}
