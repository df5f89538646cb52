package domfreq

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported dominant-frequency estimators.
// The selection is resolved once during configuration validation and stays
// fixed for an entire extraction run.
type Algorithm int

const (
	// SpectralPeak picks the strongest magnitude-spectrum bin
	SpectralPeak Algorithm = iota
	// Autocorrelation picks the strongest non-zero autocorrelation lag
	Autocorrelation
	// ZeroCrossingRate derives a coarse estimate from sign-change spacing
	ZeroCrossingRate
	// Cepstral picks the strongest cepstral peak above the minimum quefrency
	Cepstral
)

// algorithmNames maps configuration names to variants. Lookup is
// case-insensitive via ParseAlgorithm.
var algorithmNames = map[string]Algorithm{
	"spectral_peak":   SpectralPeak,
	"autocorrelation": Autocorrelation,
	"zero_crossing":   ZeroCrossingRate,
	"cepstral":        Cepstral,
}

func (a Algorithm) String() string {
	switch a {
	case SpectralPeak:
		return "spectral_peak"
	case Autocorrelation:
		return "autocorrelation"
	case ZeroCrossingRate:
		return "zero_crossing"
	case Cepstral:
		return "cepstral"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// valid reports whether a names one of the four known variants
func (a Algorithm) valid() bool {
	switch a {
	case SpectralPeak, Autocorrelation, ZeroCrossingRate, Cepstral:
		return true
	}
	return false
}

// UnknownAlgorithmError reports a configured algorithm name that does not
// resolve to any known variant. This is a configuration-time failure: it is
// raised before any chunk is processed, never silently defaulted.
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown algorithm %q (supported: %s)", e.Name, SupportedAlgorithms())
}

// SupportedAlgorithms returns the accepted configuration names in a stable order
func SupportedAlgorithms() string {
	return strings.Join([]string{
		SpectralPeak.String(),
		Autocorrelation.String(),
		ZeroCrossingRate.String(),
		Cepstral.String(),
	}, ", ")
}

// ParseAlgorithm resolves a configured algorithm name, matched
// case-insensitively, into its variant. Unrecognized names return an
// UnknownAlgorithmError.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg, ok := algorithmNames[strings.ToLower(name)]
	if !ok {
		return 0, &UnknownAlgorithmError{Name: name}
	}
	return alg, nil
}
