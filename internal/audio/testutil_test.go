package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// testWAVOptions configures the synthetic WAV fixture to generate
type testWAVOptions struct {
	DurationSecs float64 // Total duration in seconds
	SampleRate   int     // Sample rate (default: 44100)
	Channels     int     // Channel count (default: 2)
	ToneFreq     float64 // Sine wave frequency in Hz (0 = silence)
	Amplitude    float64 // Linear peak amplitude of the tone
}

// generateTestWAV writes a 16-bit PCM WAV file with the same tone on
// every channel and returns its path inside the test temp dir.
func generateTestWAV(t *testing.T, opts testWAVOptions) string {
	t.Helper()

	if opts.SampleRate == 0 {
		opts.SampleRate = 44100
	}
	if opts.Channels == 0 {
		opts.Channels = 2
	}

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}

	enc := wav.NewEncoder(f, opts.SampleRate, 16, opts.Channels, 1)

	frames := int(opts.DurationSecs * float64(opts.SampleRate))
	data := make([]int, frames*opts.Channels)
	for i := 0; i < frames; i++ {
		v := 0
		if opts.ToneFreq > 0 {
			s := opts.Amplitude * math.Sin(2.0*math.Pi*opts.ToneFreq*float64(i)/float64(opts.SampleRate))
			v = int(s * 32767.0)
		}
		for c := 0; c < opts.Channels; c++ {
			data[i*opts.Channels+c] = v
		}
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: opts.Channels, SampleRate: opts.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing fixture samples: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing fixture encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing fixture file: %v", err)
	}

	return path
}
