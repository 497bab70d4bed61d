package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/signadot/texcore/debug"
	"github.com/signadot/texcore/format"
	"github.com/signadot/texcore/tex"

	"github.com/goccy/go-yaml"
)

var ErrDecode = errors.New("template decode")

type templateJSON struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Version     Version          `json:"version"`
	ElementList *tex.ElementList `json:"element_list"`
}

func (t *Template) MarshalJSON() ([]byte, error) {
	return json.Marshal(templateJSON{
		Name:        t.Name,
		Description: t.Description,
		Version:     t.Version,
		ElementList: t.list,
	})
}

func (t *Template) UnmarshalJSON(d []byte) error {
	var j templateJSON
	if err := json.Unmarshal(d, &j); err != nil {
		return err
	}
	if j.ElementList == nil {
		return errors.New("missing element_list")
	}
	*t = Template{
		Name:        j.Name,
		Description: j.Description,
		Version:     j.Version,
		list:        j.ElementList,
	}
	return nil
}

// Marshal encodes t. JSON output is indented.
func Marshal(t *Template, f format.Format) ([]byte, error) {
	d, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, err
	}
	switch f {
	case format.JSONFormat:
		return d, nil
	case format.YAMLFormat:
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return nil, err
		}
		if !sameJSON(d, y) {
			// plain scalars lose leading tabs; a JSON document is also YAML.
			if debug.Template() {
				debug.Logf("template %s: yaml round trip is lossy, writing json\n", t.Name)
			}
			return append(d, '\n'), nil
		}
		return y, nil
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

// sameJSON reports whether the YAML document y decodes to the same value
// as the JSON document d.
func sameJSON(d, y []byte) bool {
	yd, err := yaml.YAMLToJSON(y)
	if err != nil {
		return false
	}
	var a, b any
	if json.Unmarshal(d, &a) != nil || json.Unmarshal(yd, &b) != nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Unmarshal decodes a template. Malformed input yields an error wrapping
// ErrDecode and no template.
func Unmarshal(d []byte, f format.Format) (*Template, error) {
	switch f {
	case format.JSONFormat:
	case format.YAMLFormat:
		jd, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		d = jd
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
	if debug.Template() {
		debug.Logf("decoding template: %s\n", d)
	}
	t := &Template{}
	if err := json.Unmarshal(d, t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return t, nil
}

// Load reads a template file. The format follows the file extension.
func Load(path string) (*Template, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Unmarshal(d, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Save writes t to path in the format given by the file extension.
func Save(t *Template, path string) error {
	f, err := format.FromPath(path)
	if err != nil {
		return err
	}
	d, err := Marshal(t, f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0644)
}
