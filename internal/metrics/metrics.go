// Package metrics computes loudness, dynamics, stereo and spectral
// measurements from a decoded audio buffer.
//
// Every function is pure and total: degenerate inputs (empty buffer, mono
// signal, sub-window durations) map to documented fallback values, never
// errors. The loudness meter is a simplified two-stage gated measurement
// after ITU-R BS.1770 without the K-weighting filter chain, and the true
// peak figure is a fixed offset rather than an oversampled measurement;
// both approximations are deliberate and noted on the relevant functions.
package metrics

import "github.com/pulseworks/masterkit/internal/audio"

const (
	// dbFloor is the reporting floor for all dB-valued measurements.
	dbFloor = -100.0

	// linearFloor is the linear amplitude below which RMS and peak values
	// report the floor.
	linearFloor = 1e-10

	// energyFloor is the squared-domain threshold treated as zero energy.
	energyFloor = 1e-20
)

// SpectralMethod selects the per-band spectral energy estimator. The set
// is closed: variants are chosen at construction time, not extended at
// runtime.
type SpectralMethod int

const (
	// SpectralGoertzel probes up to eight representative DFT bins per band
	// with single-bin Goertzel recursions. Fast, approximate.
	SpectralGoertzel SpectralMethod = iota

	// SpectralFFT integrates every bin in each band over a full transform.
	// Exact in-band energy, same 7-value contract.
	SpectralFFT
)

// Config defines engine construction parameters.
type Config struct {
	Spectral SpectralMethod
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the documented approximation set.
func DefaultConfig() Config {
	return Config{Spectral: SpectralGoertzel}
}

// WithSpectralMethod selects the spectral energy estimator.
func WithSpectralMethod(m SpectralMethod) Option {
	return func(cfg *Config) {
		cfg.Spectral = m
	}
}

// Engine computes the full measurement set. It is stateless and safe for
// concurrent use; construction exists only to pin algorithm variants.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given options applied to defaults.
func NewEngine(opts ...Option) *Engine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Engine{cfg: cfg}
}

// Measurements is the complete result set for one buffer. All dB values
// are floored at -100.
type Measurements struct {
	RMSDB            float64
	PeakDB           float64
	TruePeakDB       float64
	LUFSIntegrated   float64
	LUFSShortTermMax float64
	DynamicRangeDB   float64
	StereoWidth      float64
	FrequencyBands   FrequencyBands
}

// Measure computes all measurements for the buffer. It cannot fail.
func (e *Engine) Measure(buf *audio.Buffer) Measurements {
	rmsDB := RMSDB(buf.Samples)
	peakDB := PeakDB(buf.Samples)

	return Measurements{
		RMSDB:            rmsDB,
		PeakDB:           peakDB,
		TruePeakDB:       TruePeakDB(peakDB),
		LUFSIntegrated:   IntegratedLoudness(buf),
		LUFSShortTermMax: ShortTermLoudnessMax(buf),
		DynamicRangeDB:   DynamicRange(buf),
		StereoWidth:      StereoWidth(buf),
		FrequencyBands:   e.frequencyBands(buf),
	}
}

func (e *Engine) frequencyBands(buf *audio.Buffer) FrequencyBands {
	if e.cfg.Spectral == SpectralFFT {
		return frequencyBandsFFT(buf)
	}
	return frequencyBandsGoertzel(buf)
}
