package analysis

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pulseworks/masterkit/internal/audio"
	"github.com/pulseworks/masterkit/internal/mains"
	"github.com/pulseworks/masterkit/internal/metrics"
)

// Analyzer runs the decode-and-measure pipeline. Each AnalyzeFile call is
// self-contained: it allocates its own buffer, shares no state with other
// calls, and may run concurrently with them. The full decoded signal is
// held in memory for the duration of the call, so memory cost is
// O(frames x channels); very long recordings are bounded by available
// memory, not by the analyzer.
type Analyzer struct {
	registry *audio.Registry
	engine   *metrics.Engine

	// MainsHz is the mains frequency probed for hum while the decoded
	// buffer is in hand. Constructors resolve it from the system
	// timezone; callers may override it before analyzing.
	MainsHz int
}

// New creates an analyzer with the given decode config and engine options.
func New(cfg audio.Config, opts ...metrics.Option) *Analyzer {
	return &Analyzer{
		registry: audio.NewRegistry(cfg),
		engine:   metrics.NewEngine(opts...),
		MainsHz:  mains.Frequency(),
	}
}

// NewWithRegistry substitutes the decode capability, mainly for tests.
func NewWithRegistry(registry *audio.Registry, opts ...metrics.Option) *Analyzer {
	return &Analyzer{
		registry: registry,
		engine:   metrics.NewEngine(opts...),
		MainsHz:  mains.Frequency(),
	}
}

// AnalyzeFile decodes path and computes the full measurement set. It fails
// only if decoding fails; measurement is total over any decoded buffer,
// including an empty one. The call is long-running for large files and has
// no internal progress reporting; interactive callers dispatch it on their
// own goroutine.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*AudioAnalysis, error) {
	buf, info, err := a.registry.DecodeFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}

	m := a.engine.Measure(buf)

	return &AudioAnalysis{
		Metadata:         buildMetadata(path, buf, info),
		LUFSIntegrated:   m.LUFSIntegrated,
		LUFSShortTermMax: m.LUFSShortTermMax,
		RMSDB:            m.RMSDB,
		PeakDB:           m.PeakDB,
		TruePeakDB:       m.TruePeakDB,
		DynamicRangeDB:   m.DynamicRangeDB,
		StereoWidth:      m.StereoWidth,
		FrequencyBands:   m.FrequencyBands,
		HumPowerDB:       metrics.HumPowerDB(buf, float64(a.MainsHz)),
	}, nil
}

func buildMetadata(path string, buf *audio.Buffer, info *audio.StreamInfo) AudioMetadata {
	md := AudioMetadata{
		Path:         path,
		SampleRate:   buf.SampleRate,
		Channels:     buf.Channels,
		DurationSecs: buf.DurationSecs(),
		Format:       formatLabel(path),
	}
	if info.BitDepth > 0 {
		depth := info.BitDepth
		md.BitDepth = &depth
	}
	return md
}

// formatLabel derives the reported format from the filename extension.
func formatLabel(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(ext)
}
