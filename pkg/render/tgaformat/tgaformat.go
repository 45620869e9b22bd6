// Package tgaformat adds .tga output to render.SaveImage.
//
// Importing it also links github.com/ftrvxmtrx/tga, which registers a TGA
// decoder with an empty magic string. image.Decode then reports TGA
// errors for inputs no other registered format claims, so programs that
// decode images should call the format's own Decode (png.Decode) instead.
package tgaformat

import (
	"github.com/ftrvxmtrx/tga"

	"github.com/taigrr/facet/pkg/render"
)

// Ext is the file extension this package registers.
const Ext = ".tga"

func init() {
	render.RegisterEncoder(Ext, tga.Encode)
}
