package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

const (
	svgBackground = "#0a0a0a"
	svgEven       = "#ff0000"
	svgOdd        = "#ffa500"
)

// GridToSVG draws each alive cell as a scale x scale square, coloured by
// neighbour-count parity. A nil neighbours slice uses one colour.
func GridToSVG(g *life.Grid, neighbours []uint8, scale int) string {
	if scale < 1 {
		scale = 1
	}
	width := g.Cols() * scale
	height := g.Rows() * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground))

	var even, odd strings.Builder
	for _, c := range g.AliveCells() {
		rect := fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d"/>
`, c.Col*scale, c.Row*scale, scale, scale)
		i := c.Row*g.Cols() + c.Col
		if i < len(neighbours) && neighbours[i]%2 == 1 {
			odd.WriteString(rect)
		} else {
			even.WriteString(rect)
		}
	}

	if even.Len() > 0 {
		sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n%s</g>\n", svgEven, even.String()))
	}
	if odd.Len() > 0 {
		sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n%s</g>\n", svgOdd, odd.String()))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots values against their index as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, svgBackground, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
