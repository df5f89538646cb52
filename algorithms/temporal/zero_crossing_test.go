package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sine(freq float64, sampleRate, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return x
}

func TestZeroCrossing_Positions(t *testing.T) {
	t.Parallel()

	zc := NewZeroCrossing()

	tests := []struct {
		name string
		x    []float64
		want []int
	}{
		{name: "alternating", x: []float64{1, -1, 1, -1}, want: []int{0, 1, 2}},
		{name: "zero has its own sign", x: []float64{1, 0, -1}, want: []int{0, 1}},
		{name: "no crossings", x: []float64{5, 5, 5}, want: nil},
		{name: "single sample", x: []float64{1}, want: nil},
		{name: "empty", x: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, zc.Positions(tt.x))
		})
	}
}

func TestZeroCrossing_MeanSpacing(t *testing.T) {
	t.Parallel()

	zc := NewZeroCrossing()

	assert.InDelta(t, 1.0, zc.MeanSpacing([]float64{1, -1, 1, -1}), 1e-12)
	assert.Equal(t, 0.0, zc.MeanSpacing([]float64{-1, 1, 2}), "single crossing")
	assert.Equal(t, 0.0, zc.MeanSpacing([]float64{1, 2, 3}), "no crossings")
}

func TestZeroCrossing_DominantFrequency_PureTone(t *testing.T) {
	t.Parallel()

	const sampleRate = 44100

	// Tone with an exact 88-sample period: crossings sit half a period
	// apart, so the mean spacing is 44 samples
	frame := sine(sampleRate/88.0, sampleRate, 88*11+44)
	got := NewZeroCrossing().DominantFrequency(frame, sampleRate)
	assert.InDelta(t, 1000, got, 50)

	// A pure tone crosses twice per cycle, so the estimate doubles the
	// tone frequency
	frame = sine(sampleRate/44.0, sampleRate, 44*23)
	got = NewZeroCrossing().DominantFrequency(frame, sampleRate)
	assert.InDelta(t, 2*sampleRate/44.0, got, 60)
}

func TestZeroCrossing_DominantFrequency_Sentinels(t *testing.T) {
	t.Parallel()

	zc := NewZeroCrossing()

	assert.Equal(t, 0.0, zc.DominantFrequency(make([]float64, 256), 44100), "silence")
	assert.Equal(t, 0.0, zc.DominantFrequency([]float64{2, 2, 2, 2}, 44100), "constant signal")
}
