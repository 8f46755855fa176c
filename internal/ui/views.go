package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pulseworks/masterkit/internal/analysis"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#005F87"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	okIcon     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
	activeIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
	failIcon   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
	queueIcon  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
)

// renderQueueView renders the file queue while analyses are running
func renderQueueView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("press q to quit"))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := titleStyle.Render("Masterkit 🎚 - Audio Mastering Analyzer")
	subtitle := subtitleStyle.Render(fmt.Sprintf("Analyzing %d file(s)", m.TotalFiles))
	return title + "\n" + subtitle
}

// renderFileEntry renders a single file entry in the queue
func renderFileEntry(file FileProgress) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		return fmt.Sprintf(" %s %s\n   %s", okIcon, fileName, summaryLine(file.Analysis))

	case StatusAnalyzing:
		return fmt.Sprintf(" %s %s\n   Analyzing...", activeIcon, fileName)

	case StatusError:
		return fmt.Sprintf(" %s %s\n   Error: %v", failIcon, fileName, file.Error)

	default:
		return fmt.Sprintf(" %s %s\n   Queued...", queueIcon, fileName)
	}
}

// summaryLine condenses an analysis into one line for the queue view
func summaryLine(a *analysis.AudioAnalysis) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%.1f LUFS | Peak %.1f dB | DR %.1f dB | Width %.2f (%s)",
		a.LUFSIntegrated, a.PeakDB, a.DynamicRangeDB, a.StereoWidth,
		analysis.WidthLabel(a.StereoWidth))
}

// renderCompletionSummary renders the final screen once the queue drains
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
		if file.ReportPath != "" {
			b.WriteString(fmt.Sprintf("   report: %s\n", file.ReportPath))
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Done: %d analysed, %d failed in %.1fs\n",
		m.CompletedFiles, m.FailedFiles, timeSince(m)))

	return b.String()
}

func timeSince(m Model) float64 {
	total := 0.0
	for _, f := range m.Files {
		total += f.Elapsed.Seconds()
	}
	return total
}
