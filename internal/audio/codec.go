package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen is how many leading bytes codecs get to inspect. Enough for
// RIFF/WAVE, fLaC, OggS and ID3 magics.
const sniffLen = 16

// Codec is the capability interface for one demux/decode backend.
// Probe inspects the stream and reports its parameters; Decode produces
// the full interleaved buffer. Implementations must treat a stream that
// yields zero decodable packets as a successful, empty decode.
type Codec interface {
	Name() string

	// Sniff reports whether this codec wants the file, given the lower-case
	// filename extension (without dot) and the first bytes of content.
	Sniff(ext string, header []byte) bool

	Probe(ctx context.Context, path string) (*StreamInfo, error)
	Decode(ctx context.Context, path string, info *StreamInfo) (*Buffer, error)
}

// Registry holds an ordered list of codecs. The first codec whose Sniff
// accepts the file handles it; order therefore encodes preference.
type Registry struct {
	codecs []Codec
}

// NewRegistry returns a registry with the default codec order: native WAV
// first, then the FFmpeg subprocess codec for everything else.
func NewRegistry(cfg Config) *Registry {
	return &Registry{codecs: []Codec{
		newWAVCodec(),
		newFFmpegCodec(cfg),
	}}
}

// NewRegistryWith builds a registry from an explicit codec list, mainly
// for tests substituting a fake decode capability.
func NewRegistryWith(codecs ...Codec) *Registry {
	return &Registry{codecs: codecs}
}

// DecodeFile probes path with a filename-extension hint plus content
// sniffing, selects a codec and decodes the whole stream. The returned
// StreamInfo reflects the probe, the Buffer the decoded samples.
func (r *Registry) DecodeFile(ctx context.Context, path string) (*Buffer, *StreamInfo, error) {
	header, err := readSniffHeader(path)
	if err != nil {
		return nil, nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	codec := r.match(ext, header)
	if codec == nil {
		return nil, nil, fmt.Errorf("probing %s: %w", path, ErrUnsupportedFormat)
	}

	info, err := codec.Probe(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("probing %s with %s: %w", path, codec.Name(), err)
	}
	if info.SampleRate <= 0 {
		return nil, nil, fmt.Errorf("probing %s with %s: %w", path, codec.Name(), ErrMissingSampleRate)
	}
	if info.Channels <= 0 {
		// Containers occasionally omit the channel layout; stereo is the
		// least surprising assumption for music sources.
		info.Channels = 2
	}

	buf, err := codec.Decode(ctx, path, info)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s with %s: %w", path, codec.Name(), err)
	}

	return buf, info, nil
}

func (r *Registry) match(ext string, header []byte) Codec {
	for _, c := range r.codecs {
		if c.Sniff(ext, header) {
			return c
		}
	}
	return nil
}

// readSniffHeader opens the file and reads the leading bytes used for
// content sniffing. Open errors distinguish missing from unreadable files.
func readSniffHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("audio file not found: %w", err)
		}
		return nil, fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading audio file header: %w", err)
	}
	return header[:n], nil
}
