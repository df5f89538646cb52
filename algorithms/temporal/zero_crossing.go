package temporal

import (
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-domfreq/algorithms/common"
)

// ZeroCrossing locates sign changes between consecutive samples and uses
// their spacing as a coarse periodicity proxy. The sign is three-valued
// (-1, 0, +1), so a sample that is exactly zero separates the crossings on
// either side of it.
type ZeroCrossing struct{}

// NewZeroCrossing creates a new zero-crossing analyzer
func NewZeroCrossing() *ZeroCrossing {
	return &ZeroCrossing{}
}

// Positions returns the indices i where sign(x[i]) differs from sign(x[i+1])
func (zc *ZeroCrossing) Positions(x []float64) []int {
	var positions []int
	for i := 0; i+1 < len(x); i++ {
		if common.Sign(x[i]) != common.Sign(x[i+1]) {
			positions = append(positions, i)
		}
	}
	return positions
}

// MeanSpacing returns the average gap in samples between consecutive
// crossings, or 0.0 when fewer than two crossings exist.
func (zc *ZeroCrossing) MeanSpacing(x []float64) float64 {
	positions := zc.Positions(x)
	if len(positions) < 2 {
		return 0.0
	}

	spacings := make([]float64, len(positions)-1)
	for i := range spacings {
		spacings[i] = float64(positions[i+1] - positions[i])
	}

	return stat.Mean(spacings, nil)
}

// DominantFrequency estimates the dominant frequency of a frame in Hz from
// its zero-crossing spacing, or 0.0 when no periodicity is determinable.
// A pure tone crosses zero twice per cycle, so this estimate sits near twice
// the tone frequency; it is a deliberately coarse measure.
func (zc *ZeroCrossing) DominantFrequency(frame []float64, sampleRate int) float64 {
	spacing := zc.MeanSpacing(frame)
	if spacing == 0 {
		return 0.0
	}

	return float64(sampleRate) / spacing
}
