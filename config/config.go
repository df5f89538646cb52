package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RyanBlaney/sonido-domfreq/domfreq"
)

// Settings mirrors the on-disk settings file. Absent fields keep the
// defaults from DefaultSettings.
type Settings struct {
	// SamplesPerGroup is the analysis window size in samples; must be >= 2
	SamplesPerGroup int `json:"samples_per_group"`
	// Algorithm names the estimator, matched case-insensitively
	Algorithm string `json:"algorithm"`
}

// DefaultSettings returns the settings used when fields are absent
func DefaultSettings() Settings {
	return Settings{
		SamplesPerGroup: 1024,
		Algorithm:       domfreq.SpectralPeak.String(),
	}
}

// Load reads and validates the settings file at path. A missing file is an
// error; the caller treats it as fatal before any audio is touched.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// Validate checks the field constraints without touching any signal
func (s Settings) Validate() error {
	if s.SamplesPerGroup < 2 {
		return &domfreq.WindowSizeError{Size: s.SamplesPerGroup}
	}
	if _, err := domfreq.ParseAlgorithm(s.Algorithm); err != nil {
		return err
	}
	return nil
}

// Params resolves validated settings into extraction parameters
func (s Settings) Params() (domfreq.Params, error) {
	if s.SamplesPerGroup < 2 {
		return domfreq.Params{}, &domfreq.WindowSizeError{Size: s.SamplesPerGroup}
	}

	alg, err := domfreq.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return domfreq.Params{}, err
	}

	return domfreq.Params{
		WindowSize: s.SamplesPerGroup,
		Algorithm:  alg,
	}, nil
}
