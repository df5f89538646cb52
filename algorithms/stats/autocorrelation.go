package stats

import (
	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-domfreq/algorithms/common"
)

// AutoCorrelation computes time-domain autocorrelation sequences and derives
// a periodicity estimate from the strongest non-zero lag.
//
// References:
// - Rabiner, L.R. (1977). "On the use of autocorrelation analysis for pitch detection"
// - Oppenheim, A.V., Schafer, R.W. (2010). "Discrete-Time Signal Processing"
type AutoCorrelation struct{}

// NewAutoCorrelation creates a new autocorrelation calculator
func NewAutoCorrelation() *AutoCorrelation {
	return &AutoCorrelation{}
}

// Compute returns the non-negative-lag half of the full autocorrelation of x
// with itself: r[k] = sum_i x[i]*x[i+k], with lag 0 first.
func (ac *AutoCorrelation) Compute(x []float64) []float64 {
	n := len(x)
	r := make([]float64, n)
	for lag := range r {
		r[lag] = floats.Dot(x[:n-lag], x[lag:])
	}
	return r
}

// DominantLag locates the strongest autocorrelation lag outside the zero-lag
// peak. It walks the first differences of r until they turn positive, which
// marks the end of the zero-lag descent, then takes the argmax from there to
// the end. Returns 0 when the sequence never turns upward, i.e. when no
// periodicity is determinable.
func (ac *AutoCorrelation) DominantLag(r []float64) int {
	start := -1
	for i, v := range common.Diff(r) {
		if v > 0 {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}

	return common.ArgMax(r[start:]) + start
}

// DominantFrequency estimates the dominant frequency of a frame in Hz from
// its autocorrelation, or 0.0 when no periodicity is determinable. The frame
// mean is removed before correlating.
func (ac *AutoCorrelation) DominantFrequency(frame []float64, sampleRate int) float64 {
	x := common.SubtractMean(frame)

	lag := ac.DominantLag(ac.Compute(x))
	if lag == 0 {
		return 0.0
	}

	return float64(sampleRate) / float64(lag)
}
