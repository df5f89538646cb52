package spectral

import (
	"math"

	"github.com/RyanBlaney/sonido-domfreq/algorithms/common"
)

// logFloor avoids a log singularity when a spectrum bin has zero magnitude
const logFloor = 1e-10

// Cepstrum estimates the dominant frequency of a frame from the peak of its
// real cepstrum: the inverse transform of the log-magnitude spectrum.
//
// Reference: Noll, A.M. (1967). "Cepstrum pitch determination"
//
// Quefrencies below sampleRate/1000 samples correspond to periodicities above
// 1000 Hz, where the cepstrum is dominated by spurious low-quefrency
// artifacts; that leading region is excluded from the peak search.
type Cepstrum struct {
	fft *FFT
}

// NewCepstrum creates a new cepstral estimator
func NewCepstrum() *Cepstrum {
	return &Cepstrum{
		fft: NewFFT(),
	}
}

// Compute returns the frequency in Hz of the strongest cepstral peak,
// or 0.0 when no periodicity is determinable. Silent frames and frames
// shorter than the excluded quefrency region yield the sentinel instead
// of an out-of-range search.
func (c *Cepstrum) Compute(frame []float64, sampleRate int) float64 {
	x := common.SubtractMean(frame)
	if !common.HasEnergy(x) {
		return 0.0
	}

	minQuefrency := sampleRate / 1000
	if minQuefrency >= len(x) {
		return 0.0
	}

	spectrum := c.fft.Compute(x)
	logMag := make([]float64, len(spectrum))
	for i, mag := range c.fft.Magnitudes(spectrum) {
		logMag[i] = math.Log(mag + logFloor)
	}

	cepstrum := c.fft.ComputeInverseReal(logMag)

	peak := common.ArgMax(cepstrum[minQuefrency:]) + minQuefrency
	if peak == 0 {
		return 0.0
	}

	return float64(sampleRate) / float64(peak)
}
