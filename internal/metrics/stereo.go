package metrics

import (
	"math"

	"github.com/pulseworks/masterkit/internal/audio"
)

// StereoWidth measures the side-to-mid energy ratio of the first two
// channels: 0 for mono-identical content, about 1 for typical stereo,
// capped at 2 for heavily out-of-phase material. Signals with fewer than
// two channels report 0. A signal with no mid energy but non-zero side
// energy (pure anti-phase) reports exactly 2.
func StereoWidth(buf *audio.Buffer) float64 {
	if buf.Channels < 2 {
		return 0
	}

	sumMidSq, sumSideSq := 0.0, 0.0
	for i := 0; i < buf.TotalFrames; i++ {
		left := buf.Samples[i*buf.Channels]
		right := buf.Samples[i*buf.Channels+1]

		mid := (left + right) * 0.5
		side := (left - right) * 0.5

		sumMidSq += mid * mid
		sumSideSq += side * side
	}

	if sumMidSq < energyFloor {
		if sumSideSq > energyFloor {
			return 2.0
		}
		return 0
	}

	return math.Min(2.0, math.Sqrt(sumSideSq/sumMidSq))
}
