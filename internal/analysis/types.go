// Package analysis ties decoding and measurement together behind a single
// analyze-one-file entry point and defines the result document shared with
// presentation layers and comparison tooling.
package analysis

import "github.com/pulseworks/masterkit/internal/metrics"

// AudioMetadata describes the analysed file. BitDepth is omitted from the
// JSON document when the container did not declare one.
type AudioMetadata struct {
	Path         string `json:"path"`
	SampleRate   int    `json:"sample_rate"`
	Channels     int    `json:"channels"`
	DurationSecs float64 `json:"duration_secs"`
	BitDepth     *int   `json:"bit_depth,omitempty"`
	Format       string `json:"format"`
}

// AudioAnalysis is the complete measurement document for one file. It is
// created fresh per analysis call, immutable, and serialises losslessly as
// JSON for downstream consumers.
type AudioAnalysis struct {
	Metadata         AudioMetadata          `json:"metadata"`
	LUFSIntegrated   float64                `json:"lufs_integrated"`
	LUFSShortTermMax float64                `json:"lufs_short_term_max"`
	RMSDB            float64                `json:"rms_db"`
	PeakDB           float64                `json:"peak_db"`
	TruePeakDB       float64                `json:"true_peak_db"`
	DynamicRangeDB   float64                `json:"dynamic_range_db"`
	StereoWidth      float64                `json:"stereo_width"`
	FrequencyBands   metrics.FrequencyBands `json:"frequency_bands"`

	// HumPowerDB is the energy at the regional mains frequency relative
	// to the whole signal, floored at -100 for silence.
	HumPowerDB float64 `json:"hum_power_db"`
}

// WidthLabel classifies a stereo width value for human-facing output.
func WidthLabel(width float64) string {
	switch {
	case width < 0.1:
		return "Mono"
	case width < 0.5:
		return "Narrow"
	case width < 0.8:
		return "Normal"
	case width < 1.2:
		return "Wide"
	default:
		return "Very Wide (possible phase issues)"
	}
}
