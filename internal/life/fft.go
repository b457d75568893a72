package life

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTStepper computes neighbour sums as a circular 2D convolution in the
// frequency domain. Plans and buffers are cached per grid shape, so a
// stepper must not be shared between goroutines.
type FFTStepper struct {
	rows, cols int
	halfC      int
	rowFFT     *fourier.FFT
	colFFT     *fourier.CmplxFFT
	kernel     []complex128
	freq       []complex128
	col        []complex128
	row        []float64
	norm       float64
}

func NewFFTStepper() *FFTStepper {
	return &FFTStepper{}
}

// StepFFT is Step computed by convolution. It allocates fresh plans on each
// call; reuse an FFTStepper for repeated steps.
func StepFFT(g *Grid) *Grid {
	return NewFFTStepper().Step(g)
}

func (s *FFTStepper) prepare(rows, cols int) {
	if s.rowFFT != nil && s.rows == rows && s.cols == cols {
		return
	}
	s.rows, s.cols = rows, cols
	s.halfC = cols/2 + 1
	s.rowFFT = fourier.NewFFT(cols)
	s.colFFT = fourier.NewCmplxFFT(rows)
	s.freq = make([]complex128, rows*s.halfC)
	s.kernel = make([]complex128, rows*s.halfC)
	s.col = make([]complex128, rows)
	s.row = make([]float64, cols)
	s.norm = 1 / float64(rows*cols)

	// Weight 1 for the cell itself and 2 per neighbour, so the sum is
	// 2n+alive. Offsets that alias on narrow grids accumulate.
	spatial := make([]float64, rows*cols)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			w := 2.0
			if dr == 0 && dc == 0 {
				w = 1
			}
			r := ((dr % rows) + rows) % rows
			c := ((dc % cols) + cols) % cols
			spatial[r*cols+c] += w
		}
	}
	s.forward(s.kernel, func(r int, dst []float64) {
		copy(dst, spatial[r*cols:(r+1)*cols])
	})
}

// forward runs a real FFT along each row, then a complex FFT down each column.
func (s *FFTStepper) forward(out []complex128, fill func(r int, dst []float64)) {
	for r := 0; r < s.rows; r++ {
		fill(r, s.row)
		s.rowFFT.Coefficients(out[r*s.halfC:(r+1)*s.halfC], s.row)
	}
	for c := 0; c < s.halfC; c++ {
		for r := 0; r < s.rows; r++ {
			s.col[r] = out[r*s.halfC+c]
		}
		s.colFFT.Coefficients(s.col, s.col)
		for r := 0; r < s.rows; r++ {
			out[r*s.halfC+c] = s.col[r]
		}
	}
}

func (s *FFTStepper) Step(g *Grid) *Grid {
	out := newGrid(g.rows, g.cols)
	if g.Empty() {
		return out
	}
	s.prepare(g.rows, g.cols)

	s.forward(s.freq, func(r int, dst []float64) {
		for c, v := range g.cells[r*g.cols : (r+1)*g.cols] {
			dst[c] = float64(v)
		}
	})

	for i := range s.freq {
		s.freq[i] *= s.kernel[i]
	}

	for c := 0; c < s.halfC; c++ {
		for r := 0; r < s.rows; r++ {
			s.col[r] = s.freq[r*s.halfC+c]
		}
		s.colFFT.Sequence(s.col, s.col)
		for r := 0; r < s.rows; r++ {
			s.freq[r*s.halfC+c] = s.col[r]
		}
	}

	for r := 0; r < s.rows; r++ {
		s.rowFFT.Sequence(s.row, s.freq[r*s.halfC:(r+1)*s.halfC])
		for c, v := range s.row {
			// 5: alive with 2, 6: dead with 3, 7: alive with 3.
			sum := math.Round(v * s.norm)
			if sum >= 5 && sum <= 7 {
				out.cells[r*g.cols+c] = Alive
			}
		}
	}
	return out
}
