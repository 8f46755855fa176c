package logging

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pulseworks/masterkit/internal/analysis"
	"github.com/pulseworks/masterkit/internal/metrics"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AAAA"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	barLoudStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	barMidStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	barQuietStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000"))
)

// RenderAnalysis formats one analysis as a styled multi-section console
// report: metadata, loudness, dynamics, stereo and a per-band bar chart.
func RenderAnalysis(a *analysis.AudioAnalysis, preset analysis.Preset) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s  %s\n", headerStyle.Render("ANALYSIS"), pathStyle.Render(a.Metadata.Path)))

	sb.WriteString("\n" + sectionStyle.Render("Metadata") + "\n")
	meta := &MetricTable{Rows: []MetricRow{
		{Label: "Format", Value: a.Metadata.Format},
		{Label: "Sample Rate", Value: fmt.Sprintf("%d", a.Metadata.SampleRate), Unit: "Hz"},
		{Label: "Channels", Value: fmt.Sprintf("%d", a.Metadata.Channels)},
		{Label: "Duration", Value: fmt.Sprintf("%.1f", a.Metadata.DurationSecs), Unit: "s"},
	}}
	if a.Metadata.BitDepth != nil {
		meta.Rows = append(meta.Rows, MetricRow{Label: "Bit Depth", Value: fmt.Sprintf("%d", *a.Metadata.BitDepth), Unit: "bit"})
	}
	sb.WriteString(meta.String())

	sb.WriteString("\n" + sectionStyle.Render("Loudness") + "\n")
	loudness := &MetricTable{Rows: []MetricRow{
		{Label: "Integrated", Value: fmt.Sprintf("%.1f", a.LUFSIntegrated), Unit: "LUFS",
			Interpretation: fmt.Sprintf("%+.1f vs %s target", a.LUFSIntegrated-preset.TargetLUFS(), preset)},
		{Label: "Short-term Max", Value: fmt.Sprintf("%.1f", a.LUFSShortTermMax), Unit: "LUFS"},
		{Label: "RMS", Value: fmt.Sprintf("%.1f", a.RMSDB), Unit: "dB"},
	}}
	sb.WriteString(loudness.String())

	sb.WriteString("\n" + sectionStyle.Render("Dynamics") + "\n")
	dynamics := &MetricTable{Rows: []MetricRow{
		{Label: "Peak", Value: fmt.Sprintf("%.1f", a.PeakDB), Unit: "dB"},
		{Label: "True Peak", Value: fmt.Sprintf("%.1f", a.TruePeakDB), Unit: "dBTP", Interpretation: "approximate, not oversampled"},
		{Label: "Dynamic Range", Value: fmt.Sprintf("%.1f", a.DynamicRangeDB), Unit: "dB"},
	}}
	sb.WriteString(dynamics.String())

	sb.WriteString("\n" + sectionStyle.Render("Stereo") + "\n")
	stereo := &MetricTable{Rows: []MetricRow{
		{Label: "Width", Value: fmt.Sprintf("%.2f", a.StereoWidth), Interpretation: analysis.WidthLabel(a.StereoWidth)},
	}}
	sb.WriteString(stereo.String())

	sb.WriteString("\n" + sectionStyle.Render("Frequency Balance") + "\n")
	sb.WriteString(renderBandChart(a.FrequencyBands))

	return sb.String()
}

// renderBandChart draws one colour-graded bar per spectral band.
func renderBandChart(bands metrics.FrequencyBands) string {
	var sb strings.Builder
	levels := bands.Levels()
	for i, spec := range metrics.Bands() {
		label := fmt.Sprintf("%-10s (%5.0f-%5.0f Hz)", bandTitle(spec.Name), spec.Low, spec.High)
		sb.WriteString(fmt.Sprintf("  %s %6.1f dB  %s\n", label, levels[i], bandBar(levels[i])))
	}
	return sb.String()
}

// bandBar scales a relative band level into a colour-graded bar. Levels
// around -2..-8 dB are typical for a balanced 7-band split.
func bandBar(db float64) string {
	length := int((db + 10.0) * 3.0)
	if length < 0 {
		length = 0
	}
	if length > 40 {
		length = 40
	}
	bar := strings.Repeat("#", length)

	switch {
	case db > -3.0:
		return barLoudStyle.Render(bar)
	case db > -7.0:
		return barMidStyle.Render(bar)
	default:
		return barQuietStyle.Render(bar)
	}
}

// bandTitle maps the wire-format band name to a display name.
func bandTitle(name string) string {
	switch name {
	case "sub_bass":
		return "Sub-bass"
	case "bass":
		return "Bass"
	case "low_mid":
		return "Low-mid"
	case "mid":
		return "Mid"
	case "upper_mid":
		return "Upper-mid"
	case "presence":
		return "Presence"
	default:
		return "Brilliance"
	}
}
