package metrics

import (
	"math"
	"sort"

	"github.com/pulseworks/masterkit/internal/audio"
)

// dynamicsWindowSecs is the non-overlapping window length used for the
// loud/quiet contrast measurement.
const dynamicsWindowSecs = 0.5

// DynamicRange contrasts the loudest and quietest tenths of the signal:
// RMS per non-overlapping 0.5s window, windows below the silence threshold
// excluded, then the absolute difference between the mean of the top 10%
// and the mean of the bottom 10% of window levels. Fewer than two
// qualifying windows (or too few for a non-empty tenth) report 0.
func DynamicRange(buf *audio.Buffer) float64 {
	if len(buf.Samples) == 0 || buf.Channels <= 0 {
		return 0
	}

	window := int(float64(buf.SampleRate) * dynamicsWindowSecs)
	if window == 0 || buf.TotalFrames < window {
		return 0
	}

	var windowRMS []float64
	for pos := 0; pos+window <= buf.TotalFrames; pos += window {
		rms := math.Sqrt(meanSquare(buf, pos, window))
		if rms > linearFloor {
			windowRMS = append(windowRMS, 20.0*math.Log10(rms))
		}
	}
	if len(windowRMS) < 2 {
		return 0
	}

	sort.Float64s(windowRMS)

	top := windowRMS[len(windowRMS)*9/10:]
	bottom := windowRMS[:len(windowRMS)/10]
	if len(top) == 0 || len(bottom) == 0 {
		return 0
	}

	topAvg := 0.0
	for _, v := range top {
		topAvg += v
	}
	topAvg /= float64(len(top))

	bottomAvg := 0.0
	for _, v := range bottom {
		bottomAvg += v
	}
	bottomAvg /= float64(len(bottom))

	return math.Abs(topAvg - bottomAvg)
}
