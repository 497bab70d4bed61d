package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// envFunc sets the dotted path key of "key=val" in env. val is decoded as
// YAML, so "n=3" sets a number and "tags=[a, b]" a list.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, key, err)
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	cur := env
	for i, part := range parts {
		if i == n-1 {
			cur[part] = v
			break
		}
		next := cur[part]
		if next == nil {
			next = map[string]any{}
			cur[part] = next
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		cur = m
	}
	return nil
}
