package gui

import (
	"image/color"

	"github.com/san-kum/lifesim/internal/life"
)

// Palette colours dead cells and alive cells by neighbour-count parity.
type Palette struct {
	Dead color.RGBA
	Even color.RGBA
	Odd  color.RGBA
}

// DefaultPalette is red for even counts and orange for odd ones.
var DefaultPalette = Palette{
	Dead: color.RGBA{0x00, 0x00, 0x00, 0xff},
	Even: color.RGBA{0xff, 0x00, 0x00, 0xff},
	Odd:  color.RGBA{0xff, 0xa5, 0x00, 0xff},
}

// FillRGBA writes one RGBA pixel per cell of g into buf, which must hold
// 4*g.Len() bytes. A nil neighbours slice colours every alive cell Even.
func FillRGBA(buf []byte, g *life.Grid, neighbours []uint8, p Palette) {
	for i, c := range g.Cells() {
		col := p.Dead
		if c != life.Dead {
			col = p.Even
			if i < len(neighbours) && neighbours[i]%2 == 1 {
				col = p.Odd
			}
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
