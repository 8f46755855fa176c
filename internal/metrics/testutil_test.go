package metrics

import (
	"math"
	"testing"

	"github.com/pulseworks/masterkit/internal/audio"
)

// testBufferOptions configures the synthetic buffer to generate
type testBufferOptions struct {
	DurationSecs float64 // Total duration in seconds
	SampleRate   int     // Sample rate (default: 44100)
	Channels     int     // Channel count (default: 2)
	ToneFreq     float64 // Sine wave frequency in Hz (0 = silence)
	Amplitude    float64 // Linear peak amplitude of the tone
}

// generateTestBuffer builds a synthetic decoded buffer with the same tone
// on every channel.
func generateTestBuffer(t *testing.T, opts testBufferOptions) *audio.Buffer {
	t.Helper()

	if opts.SampleRate == 0 {
		opts.SampleRate = 44100
	}
	if opts.Channels == 0 {
		opts.Channels = 2
	}
	if opts.DurationSecs == 0 {
		opts.DurationSecs = 1.0
	}

	frames := int(opts.DurationSecs * float64(opts.SampleRate))
	samples := make([]float64, frames*opts.Channels)

	for i := 0; i < frames; i++ {
		v := 0.0
		if opts.ToneFreq > 0 {
			v = opts.Amplitude * math.Sin(2.0*math.Pi*opts.ToneFreq*float64(i)/float64(opts.SampleRate))
		}
		for c := 0; c < opts.Channels; c++ {
			samples[i*opts.Channels+c] = v
		}
	}

	return &audio.Buffer{
		Samples:     samples,
		SampleRate:  opts.SampleRate,
		Channels:    opts.Channels,
		TotalFrames: frames,
	}
}

// stereoBuffer interleaves two equal-length mono channels.
func stereoBuffer(t *testing.T, left, right []float64, sampleRate int) *audio.Buffer {
	t.Helper()

	if len(left) != len(right) {
		t.Fatalf("channel length mismatch: %d vs %d", len(left), len(right))
	}
	samples := make([]float64, 2*len(left))
	for i := range left {
		samples[2*i] = left[i]
		samples[2*i+1] = right[i]
	}
	return &audio.Buffer{
		Samples:     samples,
		SampleRate:  sampleRate,
		Channels:    2,
		TotalFrames: len(left),
	}
}

// sineSamples generates a mono sine at the given peak amplitude.
func sineSamples(freq, amp float64, frames, sampleRate int) []float64 {
	out := make([]float64, frames)
	for i := range out {
		out[i] = amp * math.Sin(2.0*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return out
}

// concatBuffers joins buffers with matching layout into one signal.
func concatBuffers(t *testing.T, bufs ...*audio.Buffer) *audio.Buffer {
	t.Helper()

	if len(bufs) == 0 {
		t.Fatal("concatBuffers needs at least one buffer")
	}
	out := &audio.Buffer{
		SampleRate: bufs[0].SampleRate,
		Channels:   bufs[0].Channels,
	}
	for _, b := range bufs {
		if b.SampleRate != out.SampleRate || b.Channels != out.Channels {
			t.Fatalf("buffer layout mismatch: %d/%dch vs %d/%dch",
				b.SampleRate, b.Channels, out.SampleRate, out.Channels)
		}
		out.Samples = append(out.Samples, b.Samples...)
		out.TotalFrames += b.TotalFrames
	}
	return out
}

// assertClose fails unless got is within tolerance of want.
func assertClose(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()

	if math.IsNaN(got) || math.Abs(got-want) > tolerance {
		t.Errorf("%s = %.4f, want %.4f (±%.2f)", name, got, want, tolerance)
	}
}
