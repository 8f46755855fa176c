package audio

import (
	"context"
	"math"
	"testing"
)

func TestWAVCodecSniff(t *testing.T) {
	codec := newWAVCodec()

	tests := []struct {
		name   string
		ext    string
		header []byte
		want   bool
	}{
		{
			name:   "riff_wave_magic",
			ext:    "wav",
			header: []byte("RIFF\x24\x08\x00\x00WAVEfmt "),
			want:   true,
		},
		{
			name:   "magic_wins_over_wrong_extension",
			ext:    "bin",
			header: []byte("RIFF\x24\x08\x00\x00WAVEfmt "),
			want:   true,
		},
		{
			name:   "riff_but_not_wave",
			ext:    "avi",
			header: []byte("RIFF\x24\x08\x00\x00AVI fmt "),
			want:   false,
		},
		{
			name:   "mp3_sync_rejected",
			ext:    "mp3",
			header: []byte{0xFF, 0xFB, 0x90, 0x00, 0, 0, 0, 0, 0, 0, 0, 0},
			want:   false,
		},
		{
			name:   "short_header_falls_back_to_extension",
			ext:    "wav",
			header: []byte("RI"),
			want:   true,
		},
		{
			name:   "short_header_wrong_extension",
			ext:    "mp3",
			header: []byte("RI"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codec.Sniff(tt.ext, tt.header); got != tt.want {
				t.Errorf("Sniff(%q, %q) = %v, want %v", tt.ext, tt.header, got, tt.want)
			}
		})
	}
}

func TestWAVCodecProbe(t *testing.T) {
	path := generateTestWAV(t, testWAVOptions{
		DurationSecs: 1.0,
		SampleRate:   48000,
		Channels:     2,
		ToneFreq:     440.0,
		Amplitude:    0.5,
	})

	info, err := newWAVCodec().Probe(context.Background(), path)
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}

	if info.Container != "wav" {
		t.Errorf("Container = %q, want wav", info.Container)
	}
	if info.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", info.SampleRate)
	}
	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
	if info.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", info.BitDepth)
	}
}

func TestWAVCodecDecode(t *testing.T) {
	const (
		sampleRate = 44100
		amplitude  = 0.5
	)
	path := generateTestWAV(t, testWAVOptions{
		DurationSecs: 1.0,
		SampleRate:   sampleRate,
		Channels:     2,
		ToneFreq:     441.0,
		Amplitude:    amplitude,
	})

	codec := newWAVCodec()
	info, err := codec.Probe(context.Background(), path)
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	buf, err := codec.Decode(context.Background(), path, info)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if buf.TotalFrames != sampleRate {
		t.Errorf("TotalFrames = %d, want %d", buf.TotalFrames, sampleRate)
	}
	if len(buf.Samples) != buf.TotalFrames*buf.Channels {
		t.Errorf("len(Samples) = %d, want %d", len(buf.Samples), buf.TotalFrames*buf.Channels)
	}
	if got := buf.DurationSecs(); math.Abs(got-1.0) > 0.001 {
		t.Errorf("DurationSecs() = %.4f, want 1.0", got)
	}

	// The decoded peak should sit at the encoded amplitude within 16-bit
	// quantisation error.
	peak := 0.0
	for _, s := range buf.Samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-amplitude) > 0.001 {
		t.Errorf("decoded peak = %.4f, want %.4f", peak, amplitude)
	}

	// Both channels carry the same tone.
	left := buf.ChannelSamples(0)
	right := buf.ChannelSamples(1)
	for i := range left {
		if left[i] != right[i] {
			t.Fatalf("channel mismatch at frame %d: %f vs %f", i, left[i], right[i])
		}
	}
}

func TestWAVCodecDecodeEmpty(t *testing.T) {
	path := generateTestWAV(t, testWAVOptions{
		DurationSecs: 0,
		SampleRate:   44100,
		Channels:     1,
	})

	codec := newWAVCodec()
	info, err := codec.Probe(context.Background(), path)
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	buf, err := codec.Decode(context.Background(), path, info)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if buf.TotalFrames != 0 || len(buf.Samples) != 0 {
		t.Errorf("empty file decoded to %d frames, %d samples", buf.TotalFrames, len(buf.Samples))
	}
}
