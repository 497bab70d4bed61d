package encode

import "github.com/signadot/texcore/tex"

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeSplit encodes the main half of a split render with in after the
// metadata block.
func EncodeSplit(in *tex.Input) EncodeOption {
	return func(es *EncState) {
		es.split = true
		es.input = in
	}
}

// EncodePackages selects the packages half of a split render.
func EncodePackages(v bool) EncodeOption {
	return func(es *EncState) {
		es.split = es.split || v
		es.packages = v
	}
}
