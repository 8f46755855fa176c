package analysis

import (
	"fmt"
	"strings"
)

// Preset is a loudness delivery target used to contextualise measurements
// in reports. The set is closed.
type Preset int

const (
	PresetStreaming Preset = iota
	PresetCD
	PresetVinyl
	PresetLoud
)

// TargetLUFS returns the preset's integrated loudness target.
func (p Preset) TargetLUFS() float64 {
	switch p {
	case PresetCD:
		return -9.0
	case PresetVinyl:
		return -12.0
	case PresetLoud:
		return -6.0
	default:
		return -14.0
	}
}

// Description returns a one-line explanation of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetCD:
		return "CD-level loudness (-9 LUFS)"
	case PresetVinyl:
		return "Vinyl-friendly dynamics (-12 LUFS)"
	case PresetLoud:
		return "Maximum loudness (-6 LUFS)"
	default:
		return "Optimized for streaming platforms (-14 LUFS)"
	}
}

func (p Preset) String() string {
	switch p {
	case PresetCD:
		return "cd"
	case PresetVinyl:
		return "vinyl"
	case PresetLoud:
		return "loud"
	default:
		return "streaming"
	}
}

// ParsePreset parses a preset name, case-insensitively.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(s) {
	case "streaming":
		return PresetStreaming, nil
	case "cd":
		return PresetCD, nil
	case "vinyl":
		return PresetVinyl, nil
	case "loud":
		return PresetLoud, nil
	default:
		return PresetStreaming, fmt.Errorf("unknown preset: %s (available: streaming, cd, vinyl, loud)", s)
	}
}
