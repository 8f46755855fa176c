package audio

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"time"
)

// Config holds the external tool settings for the FFmpeg codec.
type Config struct {
	FFmpegPath  string
	FFprobePath string
	Timeout     time.Duration
}

// DefaultConfig assumes ffmpeg and ffprobe on PATH.
func DefaultConfig() Config {
	return Config{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		Timeout:     2 * time.Minute,
	}
}

// ffmpegCodec delegates demuxing and decoding to ffprobe/ffmpeg
// subprocesses. It accepts any container FFmpeg can read, which makes it
// the catch-all codec at the end of the registry order.
type ffmpegCodec struct {
	cfg Config
}

func newFFmpegCodec(cfg Config) *ffmpegCodec {
	if cfg.FFmpegPath == "" {
		cfg = DefaultConfig()
	}
	return &ffmpegCodec{cfg: cfg}
}

func (c *ffmpegCodec) Name() string { return "ffmpeg" }

// Sniff always accepts; actual format support is decided by the probe.
func (c *ffmpegCodec) Sniff(string, []byte) bool { return true }

// ffprobeOutput mirrors the subset of `ffprobe -print_format json` we read.
type ffprobeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
		Duration   string `json:"duration"`
		BitsPerRaw string `json:"bits_per_raw_sample"`
	} `json:"streams"`
	Format struct {
		FormatName string `json:"format_name"`
	} `json:"format"`
}

func (c *ffmpegCodec) Probe(ctx context.Context, path string) (*StreamInfo, error) {
	if _, err := exec.LookPath(c.cfg.FFprobePath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecInit, err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.cfg.FFprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		"-select_streams", "a:0",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, probeError(err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, fmt.Errorf("%w: parsing ffprobe output: %v", ErrUnsupportedFormat, err)
	}
	if len(probe.Streams) == 0 {
		return nil, ErrNoAudioTrack
	}

	stream := probe.Streams[0]
	if stream.CodecType != "audio" {
		return nil, ErrNoAudioTrack
	}

	sampleRate, err := strconv.Atoi(stream.SampleRate)
	if err != nil || sampleRate <= 0 {
		return nil, ErrMissingSampleRate
	}

	info := &StreamInfo{
		Codec:      stream.CodecName,
		Container:  probe.Format.FormatName,
		SampleRate: sampleRate,
		Channels:   stream.Channels,
	}
	if secs, err := strconv.ParseFloat(stream.Duration, 64); err == nil {
		info.Duration = time.Duration(secs * float64(time.Second))
	}
	if bits, err := strconv.Atoi(stream.BitsPerRaw); err == nil {
		info.BitDepth = bits
	}
	return info, nil
}

// Decode runs ffmpeg to emit the stream as raw interleaved f64le at its
// native sample rate and channel count. FFmpeg itself skips corrupt
// packets and keeps going, which matches the partial-decode contract; an
// exit failure therefore indicates a completely unreadable stream.
func (c *ffmpegCodec) Decode(ctx context.Context, path string, info *StreamInfo) (*Buffer, error) {
	if _, err := exec.LookPath(c.cfg.FFmpegPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecInit, err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.cfg.FFmpegPath,
		"-v", "error",
		"-i", path,
		"-vn",
		"-f", "f64le",
		"-ac", strconv.Itoa(info.Channels),
		"-ar", strconv.Itoa(info.SampleRate),
		"pipe:1",
	)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("ffmpeg decode failed: %w, stderr: %s", err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("ffmpeg decode failed: %w", err)
	}

	samples := bytesToFloat64(out)
	// Zero decoded packets is not an error: degenerate inputs reduce to an
	// empty buffer and the metrics floor values.
	buf := &Buffer{
		Samples:     samples,
		SampleRate:  info.SampleRate,
		Channels:    info.Channels,
		TotalFrames: len(samples) / info.Channels,
	}
	buf.Samples = buf.Samples[:buf.TotalFrames*info.Channels]
	return buf, nil
}

func (c *ffmpegCodec) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, c.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// probeError maps an ffprobe exit failure to the unsupported-format kind;
// ffprobe exits non-zero for anything it cannot demux.
func probeError(err error) error {
	if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, exitErr.Stderr)
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
}

// bytesToFloat64 reinterprets little-endian float64 PCM bytes, trimming a
// ragged tail.
func bytesToFloat64(data []byte) []float64 {
	data = data[:len(data)-len(data)%8]
	samples := make([]float64, len(data)/8)
	for i := range samples {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		samples[i] = math.Float64frombits(bits)
	}
	return samples
}
