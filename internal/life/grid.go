package life

import (
	"strings"
)

const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Cell is a (row, col) coordinate.
type Cell struct {
	Row int
	Col int
}

// Grid stores R×C binary cells in row-major order. Dimensions are fixed at
// construction.
type Grid struct {
	rows, cols int
	cells      []uint8
}

// New returns an all-dead grid. A zero dimension is allowed and yields an
// empty grid; negative dimensions are rejected.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, &InvalidDimensionError{Rows: rows, Cols: cols}
	}
	return newGrid(rows, cols), nil
}

// MustNew is like New but panics on invalid dimensions. Intended for tests
// and static tables.
func MustNew(rows, cols int) *Grid {
	g, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

func newGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// FromCells builds a grid from a rectangular matrix holding only 0 and 1.
func FromCells(rows [][]uint8) (*Grid, error) {
	return fromCells(rows, true)
}

// FromCellsLenient builds a grid treating any nonzero value as alive.
func FromCellsLenient(rows [][]uint8) (*Grid, error) {
	return fromCells(rows, false)
}

func fromCells(rows [][]uint8, strict bool) (*Grid, error) {
	if len(rows) == 0 {
		return newGrid(0, 0), nil
	}
	cols := len(rows[0])
	g := newGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, &InvalidGridError{Row: r, Col: len(row), Reason: "ragged row"}
		}
		for c, v := range row {
			switch {
			case v == Dead:
			case v == Alive || !strict:
				g.cells[r*cols+c] = Alive
			default:
				return nil, &InvalidGridError{Row: r, Col: c, Value: v, Reason: "cell value not in {0,1}"}
			}
		}
	}
	return g, nil
}

// FromAlive returns a rows×cols grid with the given cells alive. Coordinates
// wrap around the torus.
func FromAlive(rows, cols int, alive []Cell) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, c := range alive {
		g.Set(c.Row, c.Col, true)
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Empty reports whether either dimension is zero.
func (g *Grid) Empty() bool { return len(g.cells) == 0 }

// Wrap reduces (row, col) onto the torus. It must not be called on an empty grid.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Alive reports the state of (row, col) after wrapping.
func (g *Grid) Alive(row, col int) bool {
	if g.Empty() {
		return false
	}
	row, col = g.Wrap(row, col)
	return g.cells[row*g.cols+col] == Alive
}

// Set writes the state of (row, col) after wrapping. It is a no-op on an
// empty grid.
func (g *Grid) Set(row, col int, alive bool) {
	if g.Empty() {
		return
	}
	row, col = g.Wrap(row, col)
	v := Dead
	if alive {
		v = Alive
	}
	g.cells[row*g.cols+col] = v
}

// Cells returns a copy of the row-major cell buffer.
func (g *Grid) Cells() []uint8 {
	c := make([]uint8, len(g.cells))
	copy(c, g.cells)
	return c
}

func (g *Grid) Clone() *Grid {
	c := newGrid(g.rows, g.cols)
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}
	return n
}

// AliveCells lists alive coordinates in row-major order.
func (g *Grid) AliveCells() []Cell {
	out := make([]Cell, 0)
	for i, v := range g.cells {
		if v == Alive {
			out = append(out, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Changes counts births and deaths between two grids of the same shape.
func Changes(prev, next *Grid) (births, deaths int) {
	for i, v := range prev.cells {
		switch {
		case v == Dead && next.cells[i] == Alive:
			births++
		case v == Alive && next.cells[i] == Dead:
			deaths++
		}
	}
	return births, deaths
}

// String renders the grid in plaintext form: 'O' alive, '.' dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
