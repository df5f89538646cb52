package decode

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNotWAV            = errors.New("not a valid WAV file")
	ErrNotAIFF           = errors.New("not a valid AIFF file")
	ErrNoAudioData       = errors.New("no audio data in file")
)
