package domfreq

import "iter"

// Range is a half-open [Start, End) index interval into a sample sequence
type Range struct {
	Start int
	End   int
}

// Len returns the number of samples covered by the range
func (r Range) Len() int {
	return r.End - r.Start
}

// Chunks returns the sequence of consecutive, non-overlapping windows that
// exactly tile [0, n). Every window has length w except possibly the last,
// which may be shorter but never empty. When n is 0 the sequence is empty.
//
// The sequence is lazy and restartable: ranging over it again re-yields the
// same windows from the start. Pure function of (n, w); w must be positive.
func Chunks(n, w int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for start := 0; start < n; start += w {
			if !yield(Range{Start: start, End: min(start+w, n)}) {
				return
			}
		}
	}
}

// NumChunks returns ceil(n/w), the number of windows Chunks yields
func NumChunks(n, w int) int {
	if n <= 0 {
		return 0
	}
	return (n + w - 1) / w
}
