package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT provides forward and inverse Fourier transforms backed by mjibson/go-dsp
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the full discrete Fourier transform of a real-valued input.
// The output has the same length as the input; go-dsp handles non-power-of-2
// sizes efficiently.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.FFTReal(x)
}

// ComputeInverse computes the inverse discrete Fourier transform
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.IFFT(x)
}

// ComputeInverseReal computes the inverse transform of a real-valued sequence
// and keeps only the real part of the result
func (f *FFT) ComputeInverseReal(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	result := fft.IFFT(in)
	realResult := make([]float64, len(result))
	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// Magnitudes returns the magnitude of each spectrum value
func (f *FFT) Magnitudes(spectrum []complex128) []float64 {
	mags := make([]float64, len(spectrum))
	for i, v := range spectrum {
		mags[i] = cmplx.Abs(v)
	}
	return mags
}
