package logging

import (
	"fmt"
	"math"
	"sort"

	"github.com/pulseworks/masterkit/internal/analysis"
)

// Tip is one actionable mastering observation derived from an analysis.
type Tip struct {
	Priority int    // higher = more important (1-10)
	Message  string // one or two sentences of advice
	RuleID   string // stable identifier for testing and exclusion logic
}

// MaxTips caps how many observations a report shows.
const MaxTips = 5

// GenerateTips derives prioritised mastering observations from the
// analysis, relative to the chosen loudness preset. mainsHz is the
// regional mains frequency used to phrase hum warnings.
func GenerateTips(a *analysis.AudioAnalysis, preset analysis.Preset, mainsHz int) []Tip {
	if a == nil {
		return nil
	}

	rules := []func(*analysis.AudioAnalysis, analysis.Preset, int) *Tip{
		tipAboveTarget,
		tipBelowTarget,
		tipTruePeakHot,
		tipOverCompressed,
		tipWideDynamics,
		tipPhaseRisk,
		tipMonoContent,
		tipMainsHum,
		tipDullTop,
	}

	var tips []Tip
	fired := make(map[string]bool)
	for _, rule := range rules {
		if tip := rule(a, preset, mainsHz); tip != nil {
			tips = append(tips, *tip)
			fired[tip.RuleID] = true
		}
	}

	tips = applyExclusions(tips, fired)

	sort.Slice(tips, func(i, j int) bool {
		return tips[i].Priority > tips[j].Priority
	})
	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}

// applyExclusions drops observations made redundant by a more specific
// one that also fired.
func applyExclusions(tips []Tip, fired map[string]bool) []Tip {
	var result []Tip
	for _, tip := range tips {
		switch tip.RuleID {
		case "wide_dynamics":
			// A quiet master usually explains wide dynamics on its own.
			if fired["below_target"] {
				continue
			}
		case "above_target":
			if fired["true_peak_hot"] {
				continue
			}
		}
		result = append(result, tip)
	}
	return result
}

func tipAboveTarget(a *analysis.AudioAnalysis, preset analysis.Preset, _ int) *Tip {
	delta := a.LUFSIntegrated - preset.TargetLUFS()
	if delta <= 1.0 {
		return nil
	}
	return &Tip{
		Priority: 7,
		RuleID:   "above_target",
		Message: fmt.Sprintf("Integrated loudness is %.1f LU above the %s target (%.0f LUFS); expect platform normalization to turn it down.",
			delta, preset, preset.TargetLUFS()),
	}
}

func tipBelowTarget(a *analysis.AudioAnalysis, preset analysis.Preset, _ int) *Tip {
	delta := preset.TargetLUFS() - a.LUFSIntegrated
	if delta <= 2.0 || a.LUFSIntegrated <= -90 {
		return nil
	}
	return &Tip{
		Priority: 6,
		RuleID:   "below_target",
		Message: fmt.Sprintf("Integrated loudness is %.1f LU below the %s target (%.0f LUFS); there is headroom to raise the overall level.",
			delta, preset, preset.TargetLUFS()),
	}
}

func tipTruePeakHot(a *analysis.AudioAnalysis, _ analysis.Preset, _ int) *Tip {
	if a.TruePeakDB <= -1.0 {
		return nil
	}
	return &Tip{
		Priority: 9,
		RuleID:   "true_peak_hot",
		Message: fmt.Sprintf("True peak is %.1f dBTP; lossy encoding can overshoot above 0. Leave at least 1 dB of true-peak headroom.",
			a.TruePeakDB),
	}
}

func tipOverCompressed(a *analysis.AudioAnalysis, _ analysis.Preset, _ int) *Tip {
	if a.DynamicRangeDB <= 0 || a.DynamicRangeDB >= 6.0 {
		return nil
	}
	return &Tip{
		Priority: 8,
		RuleID:   "over_compressed",
		Message: fmt.Sprintf("Dynamic range is only %.1f dB; the material sounds heavily limited. Consider backing off compression before mastering.",
			a.DynamicRangeDB),
	}
}

func tipWideDynamics(a *analysis.AudioAnalysis, _ analysis.Preset, _ int) *Tip {
	if a.DynamicRangeDB <= 20.0 {
		return nil
	}
	return &Tip{
		Priority: 4,
		RuleID:   "wide_dynamics",
		Message: fmt.Sprintf("Dynamic range is %.1f dB, which is wide for a finished master; quiet passages may get lost on loud playback chains.",
			a.DynamicRangeDB),
	}
}

func tipPhaseRisk(a *analysis.AudioAnalysis, _ analysis.Preset, _ int) *Tip {
	if a.StereoWidth <= 1.2 {
		return nil
	}
	return &Tip{
		Priority: 8,
		RuleID:   "phase_risk",
		Message: fmt.Sprintf("Stereo width of %.2f indicates strong out-of-phase content; check mono compatibility before release.",
			a.StereoWidth),
	}
}

func tipMonoContent(a *analysis.AudioAnalysis, _ analysis.Preset, _ int) *Tip {
	if a.Metadata.Channels < 2 || a.StereoWidth >= 0.1 {
		return nil
	}
	return &Tip{
		Priority: 3,
		RuleID:   "mono_content",
		Message:  "The file is stereo but carries effectively mono content; a mono delivery would be equivalent and smaller.",
	}
}

// humTipThresholdDB is the relative level at the mains frequency above
// which hum is worth flagging; program material rarely concentrates this
// much energy in a single low bin.
const humTipThresholdDB = -25.0

// tipMainsHum flags measurable energy at the regional mains frequency,
// using the single-bin probe taken during analysis.
func tipMainsHum(a *analysis.AudioAnalysis, _ analysis.Preset, mainsHz int) *Tip {
	if a.HumPowerDB <= humTipThresholdDB {
		return nil
	}
	return &Tip{
		Priority: 7,
		RuleID:   "mains_hum",
		Message: fmt.Sprintf("Energy at %d Hz sits %.1f dB relative to the full signal; check for mains hum or ground loops and consider a high-pass filter.",
			mainsHz, a.HumPowerDB),
	}
}

func tipDullTop(a *analysis.AudioAnalysis, _ analysis.Preset, _ int) *Tip {
	if a.FrequencyBands.Brilliance >= -30.0 || math.Abs(a.FrequencyBands.Brilliance-(-100.0)) < 1e-9 {
		return nil
	}
	return &Tip{
		Priority: 3,
		RuleID:   "dull_top",
		Message: fmt.Sprintf("Brilliance band sits at %.1f dB relative; the top octave is very quiet and the master may sound dull.",
			a.FrequencyBands.Brilliance),
	}
}
