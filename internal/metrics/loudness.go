package metrics

import (
	"math"

	"github.com/pulseworks/masterkit/internal/audio"
)

const (
	// loudnessOffsetDB is the BS.1770 calibration constant.
	loudnessOffsetDB = -0.691

	// absGateLUFS is the absolute gating threshold.
	absGateLUFS = -70.0

	// relGateLU is how far below the ungated mean the relative gate sits.
	relGateLU = 10.0

	// gatingBlockSecs is the integration block length, hopped at 75% overlap.
	gatingBlockSecs = 0.4

	shortTermWindowSecs = 3.0
	shortTermHopSecs    = 1.0
)

// blockLoudness returns the loudness of one block: the mean square over
// all channels and frames, expressed in LUFS without K-weighting.
func blockLoudness(meanSquare float64) float64 {
	return loudnessOffsetDB + 10.0*math.Log10(meanSquare)
}

// meanSquare computes the mean squared amplitude over frames [start,
// start+length) across every channel.
func meanSquare(buf *audio.Buffer, start, length int) float64 {
	sumSq := 0.0
	base := start * buf.Channels
	for _, s := range buf.Samples[base : base+length*buf.Channels] {
		sumSq += s * s
	}
	return sumSq / float64(length*buf.Channels)
}

// IntegratedLoudness measures gated loudness in LUFS with the simplified
// two-stage meter: 400ms blocks at 75% overlap, an absolute -70 LUFS gate,
// then a relative gate 10 LU below the mean of the surviving blocks. No
// K-weighting filter is applied. Signals shorter than one block fall back
// to an RMS-based estimate; fully gated signals report the -100 floor.
func IntegratedLoudness(buf *audio.Buffer) float64 {
	if len(buf.Samples) == 0 || buf.Channels <= 0 {
		return dbFloor
	}

	blockSize := int(float64(buf.SampleRate) * gatingBlockSecs)
	hopSize := blockSize / 4

	if buf.TotalFrames < blockSize || blockSize == 0 || hopSize == 0 {
		return RMSDB(buf.Samples) + loudnessOffsetDB
	}

	var blocks []float64
	for pos := 0; pos+blockSize <= buf.TotalFrames; pos += hopSize {
		if ms := meanSquare(buf, pos, blockSize); ms > 0 {
			blocks = append(blocks, blockLoudness(ms))
		}
	}
	if len(blocks) == 0 {
		return dbFloor
	}

	// Stage 1: absolute gate.
	aboveAbs := blocks[:0]
	for _, l := range blocks {
		if l > absGateLUFS {
			aboveAbs = append(aboveAbs, l)
		}
	}
	if len(aboveAbs) == 0 {
		return dbFloor
	}

	// Stage 2: relative gate off the mean of the survivors.
	mean := 0.0
	for _, l := range aboveAbs {
		mean += l
	}
	mean /= float64(len(aboveAbs))
	relGate := mean - relGateLU

	sum, count := 0.0, 0
	for _, l := range aboveAbs {
		if l > relGate {
			sum += l
			count++
		}
	}
	if count == 0 {
		return dbFloor
	}
	return sum / float64(count)
}

// ShortTermLoudnessMax returns the maximum loudness over 3-second windows
// hopped by 1 second, ungated. Signals shorter than one window report the
// integrated loudness instead.
func ShortTermLoudnessMax(buf *audio.Buffer) float64 {
	if len(buf.Samples) == 0 || buf.Channels <= 0 {
		return dbFloor
	}

	windowSize := int(float64(buf.SampleRate) * shortTermWindowSecs)
	hopSize := int(float64(buf.SampleRate) * shortTermHopSecs)

	if buf.TotalFrames < windowSize || windowSize == 0 || hopSize == 0 {
		return IntegratedLoudness(buf)
	}

	maxLoudness := dbFloor
	for pos := 0; pos+windowSize <= buf.TotalFrames; pos += hopSize {
		if ms := meanSquare(buf, pos, windowSize); ms > 0 {
			if l := blockLoudness(ms); l > maxLoudness {
				maxLoudness = l
			}
		}
	}
	return maxLoudness
}
