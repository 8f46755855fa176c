// Package audio decodes audio files into normalized sample buffers.
//
// Format discovery and decoding are delegated to pluggable codecs (see
// Codec); the package itself only defines the buffer model and the probe
// loop. Any container/codec combination a registered codec supports is
// acceptable input.
package audio

import "time"

// Buffer holds a fully decoded audio signal as interleaved float64
// samples: frame 0 channel 0, frame 0 channel 1, ..., frame 1 channel 0.
// Whenever Channels > 0, len(Samples) == TotalFrames * Channels. An empty
// file decodes to TotalFrames == 0 and an empty sample slice.
//
// A Buffer is created once per decode and never mutated afterwards.
type Buffer struct {
	Samples     []float64
	SampleRate  int
	Channels    int
	TotalFrames int
}

// DurationSecs returns the signal duration in seconds.
func (b *Buffer) DurationSecs() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.TotalFrames) / float64(b.SampleRate)
}

// ChannelSamples extracts the samples of a single zero-indexed channel.
func (b *Buffer) ChannelSamples(ch int) []float64 {
	if ch < 0 || ch >= b.Channels {
		return nil
	}
	out := make([]float64, 0, b.TotalFrames)
	for i := ch; i < len(b.Samples); i += b.Channels {
		out = append(out, b.Samples[i])
	}
	return out
}

// StreamInfo describes the audio stream selected during probing.
// BitDepth is 0 when the container does not declare one.
type StreamInfo struct {
	Codec      string
	Container  string
	SampleRate int
	Channels   int
	Duration   time.Duration
	BitDepth   int
}
