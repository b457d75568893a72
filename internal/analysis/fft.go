package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// PowerSpectrum returns the magnitude of each real-FFT coefficient of data,
// from DC up to the Nyquist bin (len(data)/2+1 values).
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	coeffs := fourier.NewFFT(len(data)).Coefficients(nil, data)
	ps := make([]float64, len(coeffs))
	for i, c := range coeffs {
		ps[i] = cmplx.Abs(c)
	}
	return ps
}
