package life_test

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
)

func grid(rows, cols int, alive ...life.Cell) *life.Grid {
	g, err := life.FromAlive(rows, cols, alive)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func shifted(cells []life.Cell, dr, dc int) []life.Cell {
	out := make([]life.Cell, len(cells))
	for i, c := range cells {
		out[i] = life.Cell{Row: c.Row + dr, Col: c.Col + dc}
	}
	return out
}

func randomGrid(rng *rand.Rand, rows, cols int) *life.Grid {
	g := life.MustNew(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, rng.Intn(3) == 0)
		}
	}
	return g
}

func stepN(g *life.Grid, n int) *life.Grid {
	for i := 0; i < n; i++ {
		g = life.Step(g)
	}
	return g
}

var glider = []life.Cell{{1, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}}

var _ = Describe("Grid construction", func() {
	It("rejects negative dimensions", func() {
		_, err := life.New(-1, 4)
		Expect(err).To(MatchError(life.ErrInvalidDimension))

		var dimErr *life.InvalidDimensionError
		Expect(errors.As(err, &dimErr)).To(BeTrue())
		Expect(dimErr.Rows).To(Equal(-1))
	})

	It("accepts zero dimensions as an empty grid", func() {
		g, err := life.New(0, 7)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Empty()).To(BeTrue())
		Expect(g.Len()).To(BeZero())
	})

	It("rejects non-binary values in strict mode", func() {
		_, err := life.FromCells([][]uint8{{0, 1}, {2, 0}})
		Expect(err).To(MatchError(life.ErrInvalidGrid))

		var cellErr *life.InvalidGridError
		Expect(errors.As(err, &cellErr)).To(BeTrue())
		Expect(cellErr.Row).To(Equal(1))
		Expect(cellErr.Col).To(Equal(0))
		Expect(cellErr.Value).To(Equal(uint8(2)))
	})

	It("coerces nonzero values to alive in lenient mode", func() {
		g, err := life.FromCellsLenient([][]uint8{{0, 255}, {7, 0}})
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Alive(0, 1)).To(BeTrue())
		Expect(g.Alive(1, 0)).To(BeTrue())
		Expect(g.Population()).To(Equal(2))
	})

	It("rejects ragged rows", func() {
		_, err := life.FromCellsLenient([][]uint8{{0, 1, 0}, {1}})
		Expect(err).To(MatchError(life.ErrInvalidGrid))
	})

	It("wraps coordinates on Set and Alive", func() {
		g := life.MustNew(4, 5)
		g.Set(-1, 5, true)
		Expect(g.Alive(3, 0)).To(BeTrue())
		Expect(g.Alive(7, -5)).To(BeTrue())
	})
})

var _ = Describe("NeighborCount", func() {
	It("counts the eight surrounding cells", func() {
		g := grid(5, 5, life.Cell{1, 1}, life.Cell{1, 2}, life.Cell{1, 3}, life.Cell{2, 2})
		Expect(life.NeighborCount(g, 2, 2)).To(Equal(3))
		Expect(life.NeighborCount(g, 1, 2)).To(Equal(3))
		Expect(life.NeighborCount(g, 0, 2)).To(Equal(3))
	})

	It("treats (R-1, C-1) as a diagonal neighbour of (0, 0)", func() {
		g := grid(6, 9, life.Cell{5, 8})
		Expect(life.NeighborCount(g, 0, 0)).To(Equal(1))
	})

	It("is total over all integers", func() {
		g := grid(6, 9, life.Cell{5, 8}, life.Cell{0, 1})
		Expect(life.NeighborCount(g, 6, 9)).To(Equal(life.NeighborCount(g, 0, 0)))
		Expect(life.NeighborCount(g, -12, -18)).To(Equal(life.NeighborCount(g, 0, 0)))
	})

	It("returns zero on an empty grid", func() {
		Expect(life.NeighborCount(life.MustNew(0, 0), 3, -2)).To(BeZero())
	})

	It("agrees with the shifted-sum counts", func() {
		g := randomGrid(rand.New(rand.NewSource(7)), 13, 17)
		counts := life.Neighbors(g)
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				Expect(int(counts[r*g.Cols()+c])).To(Equal(life.NeighborCount(g, r, c)))
			}
		}
	})
})

var _ = Describe("Step", func() {
	It("is deterministic and leaves its input untouched", func() {
		g := randomGrid(rand.New(rand.NewSource(1)), 20, 30)
		before := g.Clone()
		a := life.Step(g)
		b := life.Step(g)
		Expect(a.Equal(b)).To(BeTrue())
		Expect(g.Equal(before)).To(BeTrue())
	})

	It("preserves dimensions", func() {
		g := randomGrid(rand.New(rand.NewSource(2)), 7, 11)
		out := life.Step(g)
		Expect(out.Rows()).To(Equal(7))
		Expect(out.Cols()).To(Equal(11))
	})

	It("maps a zero-dimension grid to an empty grid of the same shape", func() {
		out := life.Step(life.MustNew(0, 4))
		Expect(out.Rows()).To(BeZero())
		Expect(out.Cols()).To(Equal(4))
		Expect(out.Empty()).To(BeTrue())
	})

	It("keeps the empty grid empty", func() {
		for _, size := range [][2]int{{1, 1}, {3, 3}, {10, 4}} {
			g := life.MustNew(size[0], size[1])
			Expect(life.Step(g).Population()).To(BeZero())
		}
	})

	It("keeps a block as a still life", func() {
		block := grid(6, 6, life.Cell{2, 2}, life.Cell{2, 3}, life.Cell{3, 2}, life.Cell{3, 3})
		Expect(life.Step(block).Equal(block)).To(BeTrue())
	})

	It("oscillates a blinker with period two", func() {
		vertical := grid(5, 5, life.Cell{1, 2}, life.Cell{2, 2}, life.Cell{3, 2})
		horizontal := grid(5, 5, life.Cell{2, 1}, life.Cell{2, 2}, life.Cell{2, 3})

		once := life.Step(vertical)
		Expect(once.Equal(horizontal)).To(BeTrue())
		Expect(life.Step(once).Equal(vertical)).To(BeTrue())
	})

	It("translates a glider by (+1,+1) every four generations", func() {
		start := grid(10, 10, glider...)
		want := grid(10, 10, shifted(glider, 1, 1)...)
		Expect(stepN(start, 4).Equal(want)).To(BeTrue())
	})

	It("carries a glider across the wrap", func() {
		start := grid(10, 10, shifted(glider, 8, 8)...)
		want := grid(10, 10, shifted(glider, 9, 9)...)
		Expect(stepN(start, 4).Equal(want)).To(BeTrue())

		// 40 generations bring it all the way round.
		Expect(stepN(start, 40).Equal(start)).To(BeTrue())
	})

	It("births a dead cell with exactly three neighbours", func() {
		g := grid(6, 6, life.Cell{1, 1}, life.Cell{1, 2}, life.Cell{2, 1})
		Expect(g.Alive(2, 2)).To(BeFalse())
		Expect(life.NeighborCount(g, 2, 2)).To(Equal(3))
		Expect(life.Step(g).Alive(2, 2)).To(BeTrue())
	})

	It("kills isolated cells", func() {
		lone := grid(5, 5, life.Cell{2, 2})
		Expect(life.Step(lone).Alive(2, 2)).To(BeFalse())

		pair := grid(5, 5, life.Cell{2, 2}, life.Cell{2, 3})
		Expect(life.Step(pair).Population()).To(BeZero())
	})

	It("kills overcrowded cells", func() {
		g := grid(5, 5, life.Cell{2, 2}, life.Cell{1, 2}, life.Cell{3, 2}, life.Cell{2, 1}, life.Cell{2, 3})
		Expect(life.NeighborCount(g, 2, 2)).To(Equal(4))
		Expect(life.Step(g).Alive(2, 2)).To(BeFalse())
	})

	It("sees its own cell through the wrap on a 1x1 torus", func() {
		g := grid(1, 1, life.Cell{0, 0})
		Expect(life.NeighborCount(g, 0, 0)).To(Equal(8))
		Expect(life.Step(g).Population()).To(BeZero())
	})
})

var _ = Describe("Kernels", func() {
	DescribeTable("agree with Step on random grids",
		func(rows, cols int, seed int64) {
			g := randomGrid(rand.New(rand.NewSource(seed)), rows, cols)
			want := life.Step(g)
			Expect(life.StepShift(g).Equal(want)).To(BeTrue(), "shift")
			Expect(life.StepParallel(g, 4).Equal(want)).To(BeTrue(), "parallel")
			Expect(life.StepParallel(g, 0).Equal(want)).To(BeTrue(), "parallel default workers")
			Expect(life.StepFFT(g).Equal(want)).To(BeTrue(), "fft")
		},
		Entry("square", 32, 32, int64(3)),
		Entry("wide", 9, 120, int64(4)),
		Entry("tall", 101, 7, int64(5)),
		Entry("single row", 1, 40, int64(6)),
		Entry("two by two", 2, 2, int64(8)),
		Entry("odd sizes", 15, 21, int64(9)),
		Entry("single cell", 1, 1, int64(10)),
	)

	It("reuses FFT plans across generations and shapes", func() {
		stepper := life.NewFFTStepper()
		g := randomGrid(rand.New(rand.NewSource(11)), 24, 18)
		want := g
		for i := 0; i < 20; i++ {
			g = stepper.Step(g)
			want = life.Step(want)
		}
		Expect(g.Equal(want)).To(BeTrue())

		other := randomGrid(rand.New(rand.NewSource(12)), 7, 30)
		Expect(stepper.Step(other).Equal(life.Step(other))).To(BeTrue())
	})

	It("returns neighbour counts alongside the next generation", func() {
		g := grid(5, 5, life.Cell{1, 2}, life.Cell{2, 2}, life.Cell{3, 2})
		next, counts := life.StepWithNeighbors(g)
		Expect(next.Equal(life.Step(g))).To(BeTrue())
		Expect(counts).To(HaveLen(25))
		Expect(counts[2*5+1]).To(Equal(uint8(3)))
		Expect(counts[2*5+2]).To(Equal(uint8(2)))
	})

	It("handles empty grids", func() {
		g := life.MustNew(3, 0)
		Expect(life.StepShift(g).Empty()).To(BeTrue())
		Expect(life.StepParallel(g, 3).Empty()).To(BeTrue())
		Expect(life.StepFFT(g).Empty()).To(BeTrue())
	})
})

var _ = Describe("Changes", func() {
	It("counts births and deaths", func() {
		vertical := grid(5, 5, life.Cell{1, 2}, life.Cell{2, 2}, life.Cell{3, 2})
		births, deaths := life.Changes(vertical, life.Step(vertical))
		Expect(births).To(Equal(2))
		Expect(deaths).To(Equal(2))
	})
})
