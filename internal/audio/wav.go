package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavChunkFrames is how many frames each PCM read requests. Matches the
// typical WAV data chunking used by most encoders.
const wavChunkFrames = 4096

// wavCodec decodes RIFF/WAVE files natively with go-audio, avoiding the
// FFmpeg subprocess for the most common mastering interchange format.
type wavCodec struct{}

func newWAVCodec() *wavCodec { return &wavCodec{} }

func (c *wavCodec) Name() string { return "wav" }

// Sniff accepts on the RIFF....WAVE magic; the extension hint only decides
// when the file is too short to carry the magic.
func (c *wavCodec) Sniff(ext string, header []byte) bool {
	if len(header) >= 12 {
		return bytes.Equal(header[0:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE"))
	}
	return ext == "wav" || ext == "wave"
}

func (c *wavCodec) Probe(_ context.Context, path string) (*StreamInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if dec.SampleRate == 0 {
		return nil, ErrMissingSampleRate
	}

	info := &StreamInfo{
		Codec:      "pcm",
		Container:  "wav",
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}
	if d, err := dec.Duration(); err == nil {
		info.Duration = d
	}
	return info, nil
}

// Decode reads the PCM data chunk by chunk and converts to interleaved
// float64 in [-1, 1]. A short final chunk is normal termination. A read
// error mid-stream truncates at the first failure and returns whatever
// was recovered; PCM chunks cannot be resynced past a bad read, so
// continuing is not an option.
func (c *wavCodec) Decode(_ context.Context, path string, info *StreamInfo) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecInit, err)
	}

	channels := int(dec.NumChans)
	if channels <= 0 {
		channels = info.Channels
	}
	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := 1.0 / float64(int(1)<<(bitDepth-1))

	chunk := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: info.SampleRate},
		Data:           make([]int, wavChunkFrames*channels),
		SourceBitDepth: bitDepth,
	}

	buf := &Buffer{
		SampleRate: info.SampleRate,
		Channels:   channels,
	}

	for {
		n, err := dec.PCMBuffer(chunk)
		if n > 0 {
			// Drop trailing samples of a ragged final chunk so the
			// frame-count invariant holds.
			n -= n % channels
			for _, s := range chunk.Data[:n] {
				buf.Samples = append(buf.Samples, float64(s)*scale)
			}
			buf.TotalFrames += n / channels
		}
		if err != nil || n == 0 {
			break
		}
	}

	return buf, nil
}
