// Package logging renders analysis results as styled console output and
// plain-text report files.
package logging

import (
	"fmt"
	"strings"
)

// MetricRow is one measurement line in a report table. Values are
// pre-formatted so rows can mix precisions and notations.
type MetricRow struct {
	Label          string
	Value          string
	Unit           string // "LUFS", "dB", "" for unitless
	Interpretation string // optional trailing annotation
}

// MetricTable lays out measurement rows with aligned columns: labels
// left-aligned, values right-aligned, units and interpretations appended.
type MetricTable struct {
	Rows []MetricRow
}

func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth, valueWidth, unitWidth := 0, 0, 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
		if len(row.Unit) > unitWidth {
			unitWidth = len(row.Unit)
		}
	}

	var sb strings.Builder
	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("  %-*s  %*s", labelWidth, row.Label, valueWidth, row.Value))
		if unitWidth > 0 {
			sb.WriteString(fmt.Sprintf(" %-*s", unitWidth, row.Unit))
		}
		if row.Interpretation != "" {
			sb.WriteString("  " + row.Interpretation)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
