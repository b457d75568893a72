package patterns

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

// ParsePlaintext reads a pattern in the .cells format. Lines starting with
// '!' are comments; "!Name:" sets the pattern name. 'O' and '*' are alive,
// '.' is dead; short lines are padded with dead cells.
func ParsePlaintext(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, life.Cell{Row: row, Col: col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("plaintext line %d: unexpected %q", row+1, ch)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

// FormatPlaintext writes g in the .cells format.
func FormatPlaintext(w io.Writer, name string, g *life.Grid) error {
	if name != "" {
		if _, err := fmt.Fprintf(w, "!Name: %s\n", name); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, g.String())
	return err
}

// GridFromPlaintext parses a .cells document into a grid sized to its
// bounding box, or to rows×cols if those are larger.
func GridFromPlaintext(r io.Reader, rows, cols int) (*life.Grid, error) {
	p, err := ParsePlaintext(r)
	if err != nil {
		return nil, err
	}
	h, w := p.Bounds()
	if h > rows {
		rows = h
	}
	if w > cols {
		cols = w
	}
	return life.FromAlive(rows, cols, p.Cells)
}
