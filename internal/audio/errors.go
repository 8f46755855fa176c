package audio

import "errors"

// Decode failures are immediate and non-retryable; callers that want a
// fallback decoder policy implement it themselves. Each sentinel maps to
// one failure stage so errors.Is can distinguish them.
var (
	// ErrUnsupportedFormat means no registered codec recognised the file.
	ErrUnsupportedFormat = errors.New("unsupported or unprobeable format")

	// ErrNoAudioTrack means the container was readable but held no audio stream.
	ErrNoAudioTrack = errors.New("no audio track found")

	// ErrMissingSampleRate means the selected stream declares no sample rate.
	ErrMissingSampleRate = errors.New("missing sample rate metadata")

	// ErrCodecInit means the decoder backing a codec could not be constructed.
	ErrCodecInit = errors.New("failed to initialise decoder")
)
