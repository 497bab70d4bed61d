package bundle

import (
	"fmt"

	"github.com/signadot/texcore/tex"
)

func GraphicxPackage() *tex.Element {
	return tex.MustElement(tex.NewPackage("graphicx"))
}

// GraphicPath declares the directory images are looked up in. It is
// placed at the Meta level.
func GraphicPath(path string) *tex.Element {
	return tex.MustElement(tex.NewCustom(`\graphicspath{ {`+path+`} }`, tex.Meta))
}

// GraphicInclude includes one image in the document body.
func GraphicInclude(path string) *tex.Element {
	return tex.MustElement(tex.NewCustom(`\includegraphics{`+path+`}`, tex.Document))
}

// Graphics returns the graphicx package, the graphics path and one include
// per image. The i-th scale, if any, is applied to the i-th image as a
// square option. More scales than images is an error.
func Graphics(dir string, images []string, scales []float64) ([]*tex.Element, error) {
	if len(scales) > len(images) {
		return nil, fmt.Errorf("%w: %d scales for %d images", ErrBundle, len(scales), len(images))
	}
	res := []*tex.Element{GraphicxPackage(), GraphicPath(dir)}
	for i, img := range images {
		e := GraphicInclude(img)
		if i < len(scales) {
			if err := e.Modify(tex.Square("scale = " + formatFloat(scales[i]))); err != nil {
				return nil, err
			}
		}
		res = append(res, e)
	}
	return res, nil
}
