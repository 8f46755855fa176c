// Package ui provides the Bubbletea terminal user interface for masterkit
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseworks/masterkit/internal/analysis"
)

// FileStatus represents the analysis state of a single file
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusAnalyzing
	StatusComplete
	StatusError
)

// FileProgress tracks one queued audio file
type FileProgress struct {
	InputPath  string
	Status     FileStatus
	StartTime  time.Time
	Elapsed    time.Duration
	Analysis   *analysis.AudioAnalysis
	ReportPath string
	Error      error
}

// Model is the Bubbletea model for the analysis queue UI.
// Analyses run on a background goroutine that delivers progress through
// Program.Send; the model only consumes those messages, so a slow decode
// never blocks the UI loop.
type Model struct {
	Files          []FileProgress
	CurrentIndex   int
	TotalFiles     int
	CompletedFiles int
	FailedFiles    int

	StartTime time.Time
	Done      bool

	Width  int
	Height int
}

// NewModel creates a UI model for the given input files
func NewModel(inputFiles []string) Model {
	files := make([]FileProgress, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileProgress{
			InputPath: path,
			Status:    StatusQueued,
		}
	}

	return Model{
		Files:        files,
		CurrentIndex: -1,
		TotalFiles:   len(inputFiles),
		StartTime:    time.Now(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case FileStartMsg:
		m.CurrentIndex = msg.FileIndex
		m.Files[m.CurrentIndex].Status = StatusAnalyzing
		m.Files[m.CurrentIndex].StartTime = time.Now()
		return m, nil

	case FileCompleteMsg:
		if msg.FileIndex >= 0 && msg.FileIndex < len(m.Files) {
			file := &m.Files[msg.FileIndex]
			file.Elapsed = time.Since(file.StartTime)
			file.Analysis = msg.Analysis
			file.ReportPath = msg.ReportPath
			file.Error = msg.Error

			if msg.Error != nil {
				file.Status = StatusError
				m.FailedFiles++
			} else {
				file.Status = StatusComplete
				m.CompletedFiles++
			}
		}
		return m, nil

	case AllCompleteMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Done {
		return renderCompletionSummary(m)
	}
	return renderQueueView(m)
}
