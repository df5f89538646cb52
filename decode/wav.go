package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func decodeWAV(r io.ReadSeeker) (*AudioData, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav pcm: %w", err)
	}

	return fromIntBuffer(buf, int(dec.BitDepth), "wav")
}

// fromIntBuffer converts interleaved integer PCM into first-channel float64
// samples normalized by bit depth
func fromIntBuffer(buf *audio.IntBuffer, bitDepth int, format string) (*AudioData, error) {
	if buf == nil || buf.Format == nil || len(buf.Data) == 0 {
		return nil, ErrNoAudioData
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	scale := intScale(bitDepth)
	frames := len(buf.Data) / channels
	pcm := make([]float64, frames)
	for i := range frames {
		pcm[i] = float64(buf.Data[i*channels]) / scale
	}

	return &AudioData{
		PCM:        pcm,
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
		Format:     format,
	}, nil
}
