package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/lifesim/internal/life"
)

var gifPalette = color.Palette{
	color.RGBA{0x10, 0x10, 0x10, 0xff},
	color.RGBA{0xff, 0x20, 0x20, 0xff},
	color.RGBA{0xff, 0x88, 0x00, 0xff},
}

// Recorder collects one paletted frame per captured generation.
type Recorder struct {
	scale  int
	frames []*image.Paletted
}

func NewRecorder(scale int) *Recorder {
	if scale < 1 {
		scale = 1
	}
	return &Recorder{scale: scale}
}

func (r *Recorder) Frames() int { return len(r.frames) }

// Capture renders g, colouring alive cells by neighbour parity.
func (r *Recorder) Capture(g *life.Grid, neighbours []uint8) {
	img := image.NewPaletted(image.Rect(0, 0, g.Cols()*r.scale, g.Rows()*r.scale), gifPalette)
	cells := g.Cells()
	for i, v := range cells {
		if v == life.Dead {
			continue
		}
		idx := uint8(1)
		if i < len(neighbours) && neighbours[i]%2 == 1 {
			idx = 2
		}
		row, col := i/g.Cols(), i%g.Cols()
		for dy := 0; dy < r.scale; dy++ {
			for dx := 0; dx < r.scale; dx++ {
				img.SetColorIndex(col*r.scale+dx, row*r.scale+dy, idx)
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Save encodes the captured frames as a looping GIF and drops them.
func (r *Recorder) Save(path string, delayMs int) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}

	anim := gif.GIF{LoopCount: 0}
	delay := max(delayMs/10, 1)
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gif.EncodeAll(f, &anim); err != nil {
		return err
	}
	r.frames = nil
	return nil
}
