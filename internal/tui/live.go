package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

const (
	maxWidth    = 120
	maxHeight   = 48
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints each generation to a terminal with ANSI redraws.
// It satisfies sim.Observer.
type LiveRenderer struct {
	name      string
	out       io.Writer
	frameRate int
	delay     time.Duration
	lastFrame time.Time
	canvas    [][]rune
	lastPop   int
}

func NewLiveRenderer(name string, frameRate int, delay time.Duration) *LiveRenderer {
	return &LiveRenderer{
		name:      name,
		out:       os.Stdout,
		frameRate: frameRate,
		delay:     delay,
	}
}

// SetOutput redirects frames, mostly for tests.
func (r *LiveRenderer) SetOutput(w io.Writer) { r.out = w }

func (r *LiveRenderer) OnGeneration(g *life.Grid, generation int) {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	if r.frameRate > 0 && time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	r.draw(g)
	r.render(g, generation)
}

// draw fills the canvas with the top-left viewport of g.
func (r *LiveRenderer) draw(g *life.Grid) {
	h, w := min(g.Rows(), maxHeight), min(g.Cols(), maxWidth)
	if len(r.canvas) != h || (h > 0 && len(r.canvas[0]) != w) {
		r.canvas = make([][]rune, h)
		for i := range r.canvas {
			r.canvas[i] = make([]rune, w)
		}
	}

	for y := range r.canvas {
		for x := range r.canvas[y] {
			if g.Alive(y, x) {
				r.canvas[y][x] = 'O'
			} else {
				r.canvas[y][x] = '.'
			}
		}
	}
}

func (r *LiveRenderer) render(g *life.Grid, generation int) {
	w := min(g.Cols(), maxWidth)
	pop := g.Population()

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  gen=%d\n", r.name, generation))
	b.WriteString("  +" + strings.Repeat("-", w) + "+\n")

	for _, row := range r.canvas {
		b.WriteString("  |")
		b.WriteString(string(row))
		b.WriteString("|\n")
	}

	b.WriteString("  +" + strings.Repeat("-", w) + "+\n")
	b.WriteString(fmt.Sprintf("  pop=%d (%+d)", pop, pop-r.lastPop))
	if g.Rows() > maxHeight || g.Cols() > maxWidth {
		b.WriteString(fmt.Sprintf("  showing %dx%d of %dx%d", len(r.canvas), w, g.Rows(), g.Cols()))
	}
	b.WriteString("\n")
	r.lastPop = pop

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
