package analysis

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input   string
		want    Preset
		wantErr bool
	}{
		{"streaming", PresetStreaming, false},
		{"cd", PresetCD, false},
		{"vinyl", PresetVinyl, false},
		{"loud", PresetLoud, false},
		{"CD", PresetCD, false},
		{"Streaming", PresetStreaming, false},
		{"radio", PresetStreaming, true},
		{"", PresetStreaming, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePreset(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePreset(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPresetTargets(t *testing.T) {
	tests := []struct {
		preset Preset
		name   string
		target float64
	}{
		{PresetStreaming, "streaming", -14.0},
		{PresetCD, "cd", -9.0},
		{PresetVinyl, "vinyl", -12.0},
		{PresetLoud, "loud", -6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.preset.TargetLUFS(); got != tt.target {
				t.Errorf("TargetLUFS() = %.1f, want %.1f", got, tt.target)
			}
			if got := tt.preset.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if tt.preset.Description() == "" {
				t.Error("Description() is empty")
			}
		})
	}
}

func TestWidthLabel(t *testing.T) {
	tests := []struct {
		width float64
		want  string
	}{
		{0.0, "Mono"},
		{0.05, "Mono"},
		{0.3, "Narrow"},
		{0.6, "Normal"},
		{1.0, "Wide"},
		{1.5, "Very Wide (possible phase issues)"},
		{2.0, "Very Wide (possible phase issues)"},
	}

	for _, tt := range tests {
		if got := WidthLabel(tt.width); got != tt.want {
			t.Errorf("WidthLabel(%.2f) = %q, want %q", tt.width, got, tt.want)
		}
	}
}
