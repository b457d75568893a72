package viz

import (
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = rune(0x2800)

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas allocates a canvas of w x h characters.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// CanvasFor sizes a canvas so every cell of g maps to one dot.
func CanvasFor(g *life.Grid) *Canvas {
	return NewCanvas((g.Cols()+1)/2, (g.Rows()+3)/4)
}

// Set lights the dot at (x, y). The canvas is (Width*2) x (Height*4) dots.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= pixelMap[y%4][x%2]
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawGrid clears the canvas and lights one dot per alive cell.
func (c *Canvas) DrawGrid(g *life.Grid) {
	c.Clear()
	for _, cell := range g.AliveCells() {
		c.Set(cell.Col, cell.Row)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
