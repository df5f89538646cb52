package decode

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/RyanBlaney/sonido-domfreq/logging"
)

// AudioData is a decoded, mono view of an audio file. Multichannel sources
// keep only their first channel; samples are normalized to [-1, 1].
type AudioData struct {
	PCM        []float64
	SampleRate int
	// Channels is the channel count of the source container, before the
	// first-channel reduction
	Channels int
	Format   string
}

// SupportedExtensions lists the container formats File understands
var SupportedExtensions = []string{".wav", ".flac", ".ogg", ".aiff"}

// Supported reports whether path has a decodable extension
func Supported(path string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(path)))
}

// File decodes the audio file at path into mono float64 PCM
func File(path string) (*AudioData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	var data *AudioData
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		data, err = decodeWAV(f)
	case ".aiff":
		data, err = decodeAIFF(f)
	case ".ogg":
		data, err = decodeVorbis(f)
	case ".flac":
		data, err = decodeFLAC(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	logging.Debug("decoded audio file", logging.Fields{
		"file":        path,
		"format":      data.Format,
		"sample_rate": data.SampleRate,
		"channels":    data.Channels,
		"samples":     len(data.PCM),
	})

	return data, nil
}

// intScale returns the normalization divisor for integer PCM of the given
// bit depth; unknown depths fall back to 16-bit
func intScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 1 << 7
	case 24:
		return 1 << 23
	case 32:
		return 1 << 31
	default:
		return 1 << 15
	}
}
