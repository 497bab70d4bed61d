package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/texcore/debug"

	"github.com/goccy/go-yaml"
)

var ErrManifest = errors.New("build manifest")

const (
	DefaultMain      = "main.tex"
	DefaultStructure = "structure.tex"
)

// Manifest is the content of build.{yaml,json}, optionally nested under a
// top level build key.
type Manifest struct {
	Template  string         `yaml:"template" json:"template"`
	DestDir   string         `yaml:"destDir,omitempty" json:"destDir,omitempty"`
	Main      string         `yaml:"main,omitempty" json:"main,omitempty"`
	Structure string         `yaml:"structure,omitempty" json:"structure,omitempty"`
	Input     string         `yaml:"input,omitempty" json:"input,omitempty"`
	Split     bool           `yaml:"split,omitempty" json:"split,omitempty"`
	PDF       string         `yaml:"pdf,omitempty" json:"pdf,omitempty"`
	Env       map[string]any `yaml:"env,omitempty" json:"env,omitempty"`
	Metadata  map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

func findManifest(root string) (string, []byte, error) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		p := filepath.Join(root, "build"+ext)
		d, err := os.ReadFile(p)
		if err == nil {
			return p, d, nil
		}
		if !os.IsNotExist(err) {
			return "", nil, fmt.Errorf("could not read %q: %w", p, err)
		}
	}
	return "", nil, fmt.Errorf("%w: could not find build.{yaml,yml,json} in %q", ErrManifest, root)
}

func parseManifest(d []byte) (*Manifest, error) {
	var wrapped struct {
		Build *Manifest `yaml:"build"`
	}
	if err := yaml.Unmarshal(d, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	m := &Manifest{}
	if wrapped.Build != nil {
		if err := yaml.UnmarshalWithOptions(d, &wrapped, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrManifest, err)
		}
		m = wrapped.Build
	} else if err := yaml.UnmarshalWithOptions(d, m, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if m.Template == "" {
		return nil, fmt.Errorf("%w: template is required", ErrManifest)
	}
	if m.Main == "" {
		m.Main = DefaultMain
	}
	if m.Structure == "" {
		m.Structure = DefaultStructure
	}
	if m.Input == "" {
		m.Input = trimTex(m.Structure)
	}
	if debug.Build() {
		debug.Logf("manifest:\n%s\n", debug.JSON{V: m})
	}
	return m, nil
}

func trimTex(p string) string {
	if filepath.Ext(p) == ".tex" {
		return p[:len(p)-len(".tex")]
	}
	return p
}
