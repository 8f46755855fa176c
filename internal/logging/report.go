package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pulseworks/masterkit/internal/analysis"
	"github.com/pulseworks/masterkit/internal/mains"
	"github.com/pulseworks/masterkit/internal/metrics"
)

// ReportData collects everything a written report needs.
type ReportData struct {
	InputPath string
	StartTime time.Time
	EndTime   time.Time
	Analysis  *analysis.AudioAnalysis
	Preset    analysis.Preset
}

// ReportPath derives the report filename: <input>-analysis.log next to
// the input file.
func ReportPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "-analysis.log"
}

// WriteReport writes a plain-text analysis report next to the input file.
// Reports are diagnostic output; styling stays on the console.
func WriteReport(data ReportData) error {
	a := data.Analysis
	if a == nil {
		return fmt.Errorf("no analysis to report for %s", data.InputPath)
	}
	mainsHz := mains.Frequency()

	var sb strings.Builder

	sb.WriteString("MASTERKIT ANALYSIS REPORT\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")
	sb.WriteString(fmt.Sprintf("Input:    %s\n", data.InputPath))
	sb.WriteString(fmt.Sprintf("Started:  %s\n", data.StartTime.Format(time.RFC1123)))
	sb.WriteString(fmt.Sprintf("Finished: %s\n", data.EndTime.Format(time.RFC1123)))
	sb.WriteString(fmt.Sprintf("Elapsed:  %.2fs\n", data.EndTime.Sub(data.StartTime).Seconds()))
	sb.WriteString(fmt.Sprintf("Preset:   %s (%s)\n\n", data.Preset, data.Preset.Description()))

	sb.WriteString("Metadata\n" + strings.Repeat("-", 60) + "\n")
	meta := &MetricTable{Rows: []MetricRow{
		{Label: "Format", Value: a.Metadata.Format},
		{Label: "Sample Rate", Value: fmt.Sprintf("%d", a.Metadata.SampleRate), Unit: "Hz"},
		{Label: "Channels", Value: fmt.Sprintf("%d", a.Metadata.Channels)},
		{Label: "Duration", Value: fmt.Sprintf("%.2f", a.Metadata.DurationSecs), Unit: "s"},
	}}
	if a.Metadata.BitDepth != nil {
		meta.Rows = append(meta.Rows, MetricRow{Label: "Bit Depth", Value: fmt.Sprintf("%d", *a.Metadata.BitDepth), Unit: "bit"})
	}
	sb.WriteString(meta.String() + "\n")

	sb.WriteString("Measurements\n" + strings.Repeat("-", 60) + "\n")
	table := &MetricTable{Rows: []MetricRow{
		{Label: "Integrated Loudness", Value: fmt.Sprintf("%.1f", a.LUFSIntegrated), Unit: "LUFS",
			Interpretation: fmt.Sprintf("%+.1f LU vs %s target", a.LUFSIntegrated-data.Preset.TargetLUFS(), data.Preset)},
		{Label: "Short-term Max", Value: fmt.Sprintf("%.1f", a.LUFSShortTermMax), Unit: "LUFS"},
		{Label: "RMS Level", Value: fmt.Sprintf("%.1f", a.RMSDB), Unit: "dB"},
		{Label: "Peak Level", Value: fmt.Sprintf("%.1f", a.PeakDB), Unit: "dB"},
		{Label: "True Peak (approx)", Value: fmt.Sprintf("%.1f", a.TruePeakDB), Unit: "dBTP"},
		{Label: "Dynamic Range", Value: fmt.Sprintf("%.1f", a.DynamicRangeDB), Unit: "dB"},
		{Label: "Stereo Width", Value: fmt.Sprintf("%.2f", a.StereoWidth), Interpretation: analysis.WidthLabel(a.StereoWidth)},
		{Label: fmt.Sprintf("Hum at %d Hz", mainsHz), Value: fmt.Sprintf("%.1f", a.HumPowerDB), Unit: "dB",
			Interpretation: "relative to total energy"},
	}}
	sb.WriteString(table.String() + "\n")

	sb.WriteString("Frequency Balance\n" + strings.Repeat("-", 60) + "\n")
	bands := &MetricTable{}
	levels := a.FrequencyBands.Levels()
	for i, spec := range metrics.Bands() {
		bands.Rows = append(bands.Rows, MetricRow{
			Label: fmt.Sprintf("%s (%.0f-%.0f Hz)", bandTitle(spec.Name), spec.Low, spec.High),
			Value: fmt.Sprintf("%.1f", levels[i]),
			Unit:  "dB",
		})
	}
	sb.WriteString(bands.String() + "\n")

	tips := GenerateTips(a, data.Preset, mainsHz)
	if len(tips) > 0 {
		sb.WriteString("Observations\n" + strings.Repeat("-", 60) + "\n")
		for _, tip := range tips {
			sb.WriteString(fmt.Sprintf("  - %s\n", tip.Message))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Notes\n" + strings.Repeat("-", 60) + "\n")
	sb.WriteString("  - Loudness uses a simplified gated meter without K-weighting.\n")
	sb.WriteString("  - True peak is the sample peak plus a fixed 0.2 dB margin,\n")
	sb.WriteString("    not an oversampled measurement.\n")

	return os.WriteFile(ReportPath(data.InputPath), []byte(sb.String()), 0644)
}
