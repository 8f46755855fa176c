package metrics

import "math"

// truePeakOffsetDB approximates inter-sample overshoot as a fixed margin
// above the sample peak. A standards-compliant true-peak measurement would
// oversample the signal (ITU-R BS.1770 annex 2); this is knowingly not that.
const truePeakOffsetDB = 0.2

// RMSDB returns the RMS level over the flattened sample stream in dB,
// floored at -100 for silence and empty input.
func RMSDB(samples []float64) float64 {
	if len(samples) == 0 {
		return dbFloor
	}
	sumSq := 0.0
	for _, s := range samples {
		sumSq += s * s
	}
	rms := math.Sqrt(sumSq / float64(len(samples)))
	if rms < linearFloor {
		return dbFloor
	}
	return 20.0 * math.Log10(rms)
}

// PeakDB returns the maximum absolute sample level in dB, floored at -100.
func PeakDB(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak < linearFloor {
		return dbFloor
	}
	return 20.0 * math.Log10(peak)
}

// TruePeakDB derives the approximate true peak from the sample peak.
func TruePeakDB(peakDB float64) float64 {
	return peakDB + truePeakOffsetDB
}
