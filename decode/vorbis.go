package decode

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

func decodeVorbis(r io.Reader) (*AudioData, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding ogg vorbis: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoAudioData
	}

	channels := format.Channels
	if channels < 1 {
		channels = 1
	}

	// Samples arrive interleaved and already normalized to [-1, 1]
	frames := len(data) / channels
	pcm := make([]float64, frames)
	for i := range frames {
		pcm[i] = float64(data[i*channels])
	}

	return &AudioData{
		PCM:        pcm,
		SampleRate: format.SampleRate,
		Channels:   channels,
		Format:     "ogg",
	}, nil
}
