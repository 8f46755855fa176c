package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseworks/masterkit/internal/analysis"
	"github.com/pulseworks/masterkit/internal/audio"
	"github.com/pulseworks/masterkit/internal/cli"
	"github.com/pulseworks/masterkit/internal/logging"
	"github.com/pulseworks/masterkit/internal/metrics"
	"github.com/pulseworks/masterkit/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version  bool     `short:"v" help:"Show version information"`
	JSON     bool     `help:"Print analyses as JSON instead of the interactive UI"`
	Logs     bool     `help:"Write a plain-text analysis report next to each input"`
	Preset   string   `short:"p" default:"streaming" help:"Loudness target preset (streaming, cd, vinyl, loud)"`
	Spectral string   `enum:"goertzel,fft" default:"goertzel" help:"Spectral band estimator"`
	Files    []string `arg:"" name:"files" help:"Audio files to analyze" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("masterkit"),
		kong.Description("Audio mastering analyzer"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	if len(cliArgs.Files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	preset, err := analysis.ParsePreset(cliArgs.Preset)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	var engineOpts []metrics.Option
	if cliArgs.Spectral == "fft" {
		engineOpts = append(engineOpts, metrics.WithSpectralMethod(metrics.SpectralFFT))
	}
	analyzer := analysis.New(audio.DefaultConfig(), engineOpts...)

	if cliArgs.JSON {
		os.Exit(runJSON(analyzer, cliArgs.Files))
	}

	runTUI(analyzer, cliArgs.Files, preset, cliArgs.Logs)
}

// runJSON analyses each file sequentially and prints the result document,
// one JSON object per file.
func runJSON(analyzer *analysis.Analyzer, files []string) int {
	exitCode := 0
	for _, path := range files {
		result, err := analyzer.AnalyzeFile(context.Background(), path)
		if err != nil {
			cli.PrintError(err.Error())
			exitCode = 1
			continue
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			cli.PrintError(fmt.Sprintf("encoding analysis: %v", err))
			exitCode = 1
			continue
		}
		fmt.Println(string(out))
	}
	return exitCode
}

// runTUI drives the Bubbletea queue UI while analyses run on a background
// goroutine. Each analyze call is one long-running unit of work; the
// goroutine keeps the interactive loop responsive.
func runTUI(analyzer *analysis.Analyzer, files []string, preset analysis.Preset, writeLogs bool) {
	model := ui.NewModel(files)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		for i, inputPath := range files {
			startTime := time.Now()
			p.Send(ui.FileStartMsg{
				FileIndex: i,
				FileName:  inputPath,
			})

			result, err := analyzer.AnalyzeFile(context.Background(), inputPath)
			if err != nil {
				p.Send(ui.FileCompleteMsg{
					FileIndex: i,
					Error:     err,
				})
				continue
			}

			reportPath := ""
			if writeLogs {
				data := logging.ReportData{
					InputPath: inputPath,
					StartTime: startTime,
					EndTime:   time.Now(),
					Analysis:  result,
					Preset:    preset,
				}
				if err := logging.WriteReport(data); err == nil {
					reportPath = logging.ReportPath(inputPath)
				}
			}

			p.Send(ui.FileCompleteMsg{
				FileIndex:  i,
				Analysis:   result,
				ReportPath: reportPath,
			})
		}

		p.Send(ui.AllCompleteMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}

	// Full styled reports after the alt-screen UI exits, so they stay in
	// the scrollback.
	if m, ok := finalModel.(ui.Model); ok {
		for _, file := range m.Files {
			if file.Analysis != nil {
				fmt.Println(logging.RenderAnalysis(file.Analysis, preset))
			}
		}
	}
}
