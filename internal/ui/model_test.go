package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseworks/masterkit/internal/analysis"
)

func TestNewModel(t *testing.T) {
	m := NewModel([]string{"/music/a.wav", "/music/b.wav"})

	if m.TotalFiles != 2 || len(m.Files) != 2 {
		t.Fatalf("got %d/%d files, want 2", m.TotalFiles, len(m.Files))
	}
	for i, f := range m.Files {
		if f.Status != StatusQueued {
			t.Errorf("file %d status = %d, want queued", i, f.Status)
		}
	}
	if m.CurrentIndex != -1 {
		t.Errorf("CurrentIndex = %d, want -1", m.CurrentIndex)
	}
	// All progress arrives via Program.Send; the model schedules nothing.
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() returned a command, want nil")
	}
}

func TestModelUpdate(t *testing.T) {
	t.Run("file_start_marks_analyzing", func(t *testing.T) {
		m := NewModel([]string{"/music/a.wav"})

		updated, cmd := m.Update(FileStartMsg{FileIndex: 0, FileName: "/music/a.wav"})
		if cmd != nil {
			t.Error("Update(FileStartMsg) returned a command, want nil")
		}
		got := updated.(Model)
		if got.Files[0].Status != StatusAnalyzing || got.CurrentIndex != 0 {
			t.Errorf("status = %d, index = %d", got.Files[0].Status, got.CurrentIndex)
		}
	})

	t.Run("file_complete_records_analysis", func(t *testing.T) {
		m := NewModel([]string{"/music/a.wav"})
		m.Files[0].Status = StatusAnalyzing

		result := &analysis.AudioAnalysis{LUFSIntegrated: -14.0}
		updated, _ := m.Update(FileCompleteMsg{FileIndex: 0, Analysis: result, ReportPath: "/music/a-analysis.log"})
		got := updated.(Model)

		if got.Files[0].Status != StatusComplete {
			t.Errorf("status = %d, want complete", got.Files[0].Status)
		}
		if got.Files[0].Analysis != result || got.Files[0].ReportPath != "/music/a-analysis.log" {
			t.Errorf("file progress not recorded: %+v", got.Files[0])
		}
		if got.CompletedFiles != 1 || got.FailedFiles != 0 {
			t.Errorf("counts = %d/%d, want 1/0", got.CompletedFiles, got.FailedFiles)
		}
	})

	t.Run("file_error_counts_failure", func(t *testing.T) {
		m := NewModel([]string{"/music/a.wav"})

		updated, _ := m.Update(FileCompleteMsg{FileIndex: 0, Error: errors.New("decode failed")})
		got := updated.(Model)

		if got.Files[0].Status != StatusError {
			t.Errorf("status = %d, want error", got.Files[0].Status)
		}
		if got.CompletedFiles != 0 || got.FailedFiles != 1 {
			t.Errorf("counts = %d/%d, want 0/1", got.CompletedFiles, got.FailedFiles)
		}
	})

	t.Run("out_of_range_index_ignored", func(t *testing.T) {
		m := NewModel([]string{"/music/a.wav"})

		updated, _ := m.Update(FileCompleteMsg{FileIndex: 5})
		got := updated.(Model)
		if got.CompletedFiles != 0 && got.FailedFiles != 0 {
			t.Errorf("counts changed for out-of-range index: %+v", got)
		}
	})

	t.Run("all_complete_quits", func(t *testing.T) {
		m := NewModel([]string{"/music/a.wav"})

		updated, cmd := m.Update(AllCompleteMsg{})
		got := updated.(Model)
		if !got.Done {
			t.Error("Done not set")
		}
		if cmd == nil {
			t.Fatal("Update(AllCompleteMsg) returned no command, want quit")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("command is not tea.Quit")
		}
	})

	t.Run("q_quits", func(t *testing.T) {
		m := NewModel([]string{"/music/a.wav"})

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		if cmd == nil {
			t.Fatal("q did not produce a command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("q command is not tea.Quit")
		}
	})

	t.Run("window_size_tracked", func(t *testing.T) {
		m := NewModel([]string{"/music/a.wav"})

		updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
		got := updated.(Model)
		if got.Width != 120 || got.Height != 40 {
			t.Errorf("size = %dx%d, want 120x40", got.Width, got.Height)
		}
	})
}
