// Package encode writes rendered documents to a writer, optionally
// highlighting the LaTeX with terminal colors.
//
// # Usage
//
//	// plain combined render
//	err := encode.Encode(list, os.Stdout)
//
//	// colored main half of a split render
//	err := encode.Encode(list, os.Stdout,
//	    encode.EncodeSplit(tex.NewInput("structure", tex.Meta)),
//	    encode.EncodeColors(encode.NewColors()))
package encode
