package domfreq

import (
	"context"
	"fmt"

	"github.com/RyanBlaney/sonido-domfreq/algorithms/spectral"
	"github.com/RyanBlaney/sonido-domfreq/algorithms/stats"
	"github.com/RyanBlaney/sonido-domfreq/algorithms/temporal"
)

// Params configures an Extractor
type Params struct {
	// WindowSize is the number of samples per analysis window; must be >= 2
	WindowSize int `json:"window_size"`
	// Algorithm selects the estimator applied to every window of a run
	Algorithm Algorithm `json:"algorithm"`
}

// DefaultParams returns the default extraction parameters
func DefaultParams() Params {
	return Params{
		WindowSize: 1024,
		Algorithm:  SpectralPeak,
	}
}

// WindowSizeError reports a window size too small to carry any periodicity
type WindowSizeError struct {
	Size int
}

func (e *WindowSizeError) Error() string {
	return fmt.Sprintf("window size must be at least 2 samples, got %d", e.Size)
}

// Extractor applies one configured estimator uniformly across a signal,
// producing one dominant-frequency estimate per window in time order.
//
// Estimation is purely functional: no I/O, no shared state between windows.
// An Extractor is safe for concurrent use across independent signals.
type Extractor struct {
	params Params

	spectralPeak *spectral.SpectralPeak
	cepstrum     *spectral.Cepstrum
	autocorr     *stats.AutoCorrelation
	zeroCross    *temporal.ZeroCrossing
}

// NewExtractor validates params and resolves the configured algorithm into a
// fixed estimator. Validation failures surface here, before any signal is
// touched.
func NewExtractor(params Params) (*Extractor, error) {
	if params.WindowSize < 2 {
		return nil, &WindowSizeError{Size: params.WindowSize}
	}
	if !params.Algorithm.valid() {
		return nil, &UnknownAlgorithmError{Name: params.Algorithm.String()}
	}

	return &Extractor{
		params:       params,
		spectralPeak: spectral.NewSpectralPeak(),
		cepstrum:     spectral.NewCepstrum(),
		autocorr:     stats.NewAutoCorrelation(),
		zeroCross:    temporal.NewZeroCrossing(),
	}, nil
}

// Algorithm returns the estimator variant this extractor was configured with
func (e *Extractor) Algorithm() Algorithm {
	return e.params.Algorithm
}

// WindowSize returns the configured samples per window
func (e *Extractor) WindowSize() int {
	return e.params.WindowSize
}

// Extract produces one frequency estimate in Hz per window of pcm, in window
// (hence time) order. The result length is ceil(len(pcm)/WindowSize); an
// empty signal produces an empty result. Deterministic for identical inputs.
func (e *Extractor) Extract(pcm []float64, sampleRate int) []float64 {
	estimates := make([]float64, 0, NumChunks(len(pcm), e.params.WindowSize))
	for r := range Chunks(len(pcm), e.params.WindowSize) {
		estimates = append(estimates, e.estimate(pcm[r.Start:r.End], sampleRate))
	}
	return estimates
}

// ExtractContext behaves like Extract but checks ctx between windows, for
// callers processing very large signals that need external cancellation.
func (e *Extractor) ExtractContext(ctx context.Context, pcm []float64, sampleRate int) ([]float64, error) {
	estimates := make([]float64, 0, NumChunks(len(pcm), e.params.WindowSize))
	for r := range Chunks(len(pcm), e.params.WindowSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		estimates = append(estimates, e.estimate(pcm[r.Start:r.End], sampleRate))
	}
	return estimates, nil
}

// estimate dispatches one window to the configured estimator. The short-window
// rule lives here, and only here, so it cannot diverge between variants: fewer
// than two samples carry no determinable periodicity and yield the sentinel.
func (e *Extractor) estimate(chunk []float64, sampleRate int) float64 {
	if len(chunk) < 2 {
		return 0.0
	}

	switch e.params.Algorithm {
	case SpectralPeak:
		return e.spectralPeak.Compute(chunk, sampleRate)
	case Autocorrelation:
		return e.autocorr.DominantFrequency(chunk, sampleRate)
	case ZeroCrossingRate:
		return e.zeroCross.DominantFrequency(chunk, sampleRate)
	case Cepstral:
		return e.cepstrum.Compute(chunk, sampleRate)
	}

	// Unreachable: NewExtractor rejects unknown variants
	return 0.0
}
