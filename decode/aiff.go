package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

func decodeAIFF(r io.ReadSeeker) (*AudioData, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAIFF
	}

	dec.ReadInfo()
	format := dec.Format()
	if format == nil {
		return nil, ErrNotAIFF
	}

	// aiff has no full-buffer shortcut, so drain the decoder chunk by chunk
	buf := &audio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}
	var data []int
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			data = append(data, buf.Data[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading aiff pcm: %w", err)
		}
		if n == 0 {
			break
		}
	}

	full := &audio.IntBuffer{Data: data, Format: format}
	return fromIntBuffer(full, int(dec.BitDepth), "aiff")
}
