package life

// next applies the transition rule to one cell.
func next(state uint8, n uint8) uint8 {
	if n == 3 || (state == Alive && n == 2) {
		return Alive
	}
	return Dead
}

// NeighborCount returns the number of alive cells among the eight toroidal
// neighbours of (row, col). Row and col may be any integers. On grids
// narrower than three cells the neighbourhood wraps onto itself, and each
// offset is counted separately.
func NeighborCount(g *Grid, row, col int) int {
	if g.Empty() {
		return 0
	}
	row, col = g.Wrap(row, col)
	return int(g.countAt(row, col))
}

// countAt expects row and col already in range.
func (g *Grid) countAt(row, col int) uint8 {
	up := row - 1
	if up < 0 {
		up = g.rows - 1
	}
	down := row + 1
	if down == g.rows {
		down = 0
	}
	left := col - 1
	if left < 0 {
		left = g.cols - 1
	}
	right := col + 1
	if right == g.cols {
		right = 0
	}

	c := g.cells
	w := g.cols
	return c[up*w+left] + c[up*w+col] + c[up*w+right] +
		c[row*w+left] + c[row*w+right] +
		c[down*w+left] + c[down*w+col] + c[down*w+right]
}

// Step returns generation N+1 of g. Every cell is evaluated against g, which
// is left untouched.
func Step(g *Grid) *Grid {
	out := newGrid(g.rows, g.cols)
	stepRows(g, out, 0, g.rows)
	return out
}

// stepRows fills dst rows [start, end) from src.
func stepRows(src, dst *Grid, start, end int) {
	w := src.cols
	for r := start; r < end; r++ {
		for c := 0; c < w; c++ {
			idx := r*w + c
			dst.cells[idx] = next(src.cells[idx], src.countAt(r, c))
		}
	}
}

// Neighbors returns the neighbour count of every cell, row-major. It uses
// shifted-sum accumulation: the grid is rolled by each of the eight offsets
// and the copies are summed.
func Neighbors(g *Grid) []uint8 {
	counts := make([]uint8, len(g.cells))
	if g.Empty() {
		return counts
	}
	rows, cols := g.rows, g.cols
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			for r := 0; r < rows; r++ {
				sr := (r + dr + rows) % rows
				dst := counts[r*cols : (r+1)*cols]
				src := g.cells[sr*cols : (sr+1)*cols]
				for c := range dst {
					sc := c + dc
					if sc < 0 {
						sc += cols
					} else if sc >= cols {
						sc -= cols
					}
					dst[c] += src[sc]
				}
			}
		}
	}
	return counts
}

// StepShift is Step computed from the shifted-sum neighbour counts.
func StepShift(g *Grid) *Grid {
	out, _ := StepWithNeighbors(g)
	return out
}

// StepWithNeighbors returns the next generation together with the neighbour
// counts it was derived from. The counts are informational, e.g. for
// colouring cells by parity.
func StepWithNeighbors(g *Grid) (*Grid, []uint8) {
	counts := Neighbors(g)
	out := newGrid(g.rows, g.cols)
	for i, n := range counts {
		// (alive & n==2) | n==3
		out.cells[i] = (g.cells[i] & b2u(n == 2)) | b2u(n == 3)
	}
	return out, counts
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
