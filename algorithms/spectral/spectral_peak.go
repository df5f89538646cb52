package spectral

import (
	"github.com/RyanBlaney/sonido-domfreq/algorithms/common"
)

// SpectralPeak estimates the dominant frequency of a frame as the center
// frequency of the strongest magnitude-spectrum bin.
//
// The frame mean is removed first so a DC offset cannot masquerade as the
// strongest component. Only non-negative frequency bins are searched; bin k
// maps to k*sampleRate/frameLength Hz. Exact magnitude ties resolve to the
// lowest (lowest-frequency) bin, so a frame with no spectral content at all
// lands on bin 0 and yields 0.0.
type SpectralPeak struct {
	fft *FFT
}

// NewSpectralPeak creates a new spectral peak estimator
func NewSpectralPeak() *SpectralPeak {
	return &SpectralPeak{
		fft: NewFFT(),
	}
}

// Compute returns the frequency in Hz of the strongest spectral bin,
// or 0.0 when the frame carries no determinable content.
func (sp *SpectralPeak) Compute(frame []float64, sampleRate int) float64 {
	if len(frame) == 0 {
		return 0.0
	}

	x := common.SubtractMean(frame)
	spectrum := sp.fft.Compute(x)

	// Non-negative frequency bins only: k = 0 .. floor(n/2)
	bins := len(x)/2 + 1
	mags := sp.fft.Magnitudes(spectrum[:bins])

	peak := common.ArgMax(mags)
	if peak <= 0 {
		return 0.0
	}

	return float64(peak) * float64(sampleRate) / float64(len(x))
}
