package ui

import (
	"github.com/pulseworks/masterkit/internal/analysis"
)

// FileStartMsg indicates analysis has started for a file
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg carries the finished analysis (or failure) for a file
type FileCompleteMsg struct {
	FileIndex  int
	Analysis   *analysis.AudioAnalysis
	ReportPath string
	Error      error
}

// AllCompleteMsg indicates every queued file has been analysed
type AllCompleteMsg struct{}
