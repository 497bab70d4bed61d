package template

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/texcore/debug"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("template patch")

// ApplyMergePatch applies an RFC 7386 merge patch to the JSON form of t
// and returns the patched template. t is left unchanged.
func ApplyMergePatch(t *Template, patch []byte) (*Template, error) {
	return apply(t, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

// ApplyJSONPatch applies an RFC 6902 patch to the JSON form of t and
// returns the patched template. t is left unchanged.
func ApplyJSONPatch(t *Template, patch []byte) (*Template, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return apply(t, ops.Apply)
}

func apply(t *Template, f func([]byte) ([]byte, error)) (*Template, error) {
	doc, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	out, err := f(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Template() {
		debug.Logf("patched template: %s\n", out)
	}
	res := &Template{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return res, nil
}
