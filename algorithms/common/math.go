package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic reductions shared across algorithms, using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// SubtractMean returns a copy of data with its DC offset removed.
// The input slice is never modified.
func SubtractMean(data []float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}

	copy(out, data)
	floats.AddConst(-stat.Mean(out, nil), out)

	return out
}

// ArgMax returns the index of the largest value in data.
// Ties resolve to the lowest index; an empty slice returns -1.
func ArgMax(data []float64) int {
	if len(data) == 0 {
		return -1
	}
	return floats.MaxIdx(data)
}

// Diff calculates the first discrete differences d[i] = data[i+1] - data[i].
// Slices shorter than 2 yield an empty result.
func Diff(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	d := make([]float64, len(data)-1)
	for i := range d {
		d[i] = data[i+1] - data[i]
	}

	return d
}

// Sign returns the three-valued sign of x: -1, 0 or +1.
// Zero keeps its own sign so that exact zero samples stay
// distinguishable from positive and negative ones.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1.0
	case x < 0:
		return -1.0
	default:
		return 0.0
	}
}

// HasEnergy reports whether data contains any non-zero sample
func HasEnergy(data []float64) bool {
	for _, v := range data {
		if v != 0 {
			return true
		}
	}
	return false
}
