package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

func decodeFLAC(r io.Reader) (*AudioData, error) {
	stream, err := flac.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing flac: %w", err)
	}

	info := stream.Info
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	// flac frames carry per-channel subframes, so the first-channel
	// reduction is just subframe 0 of each frame
	var pcm []float64
	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding flac frame: %w", err)
		}
		for _, sample := range frame.Subframes[0].Samples {
			pcm = append(pcm, float64(sample)/scale)
		}
	}

	if len(pcm) == 0 {
		return nil, ErrNoAudioData
	}

	return &AudioData{
		PCM:        pcm,
		SampleRate: int(info.SampleRate),
		Channels:   int(info.NChannels),
		Format:     "flac",
	}, nil
}
