package metrics

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/pulseworks/masterkit/internal/audio"
)

// spectralWindowSize is the analysis window in samples; shorter signals
// are analysed as a single whole-signal window.
const spectralWindowSize = 4096

// maxBandProbes caps how many representative bins the Goertzel estimator
// samples per band.
const maxBandProbes = 8

// BandCount is the number of reported spectral bands.
const BandCount = 7

// BandSpec names one spectral band and its frequency range in Hz.
type BandSpec struct {
	Name string
	Low  float64
	High float64
}

// bandSpecs is the fixed 7-band split used for spectral balance.
var bandSpecs = [BandCount]BandSpec{
	{"sub_bass", 20, 60},
	{"bass", 60, 250},
	{"low_mid", 250, 500},
	{"mid", 500, 2000},
	{"upper_mid", 2000, 4000},
	{"presence", 4000, 6000},
	{"brilliance", 6000, 20000},
}

// Bands returns the ordered band definitions.
func Bands() [BandCount]BandSpec {
	return bandSpecs
}

// FrequencyBands reports relative spectral energy per band in dB. The
// values are normalised so the linear ratios 10^(db/10) across all seven
// bands sum to 1; individual ratios below 1e-20 are floored at -100 dB.
type FrequencyBands struct {
	SubBass    float64 `json:"sub_bass"`
	Bass       float64 `json:"bass"`
	LowMid     float64 `json:"low_mid"`
	Mid        float64 `json:"mid"`
	UpperMid   float64 `json:"upper_mid"`
	Presence   float64 `json:"presence"`
	Brilliance float64 `json:"brilliance"`
}

// Levels returns the band values in band order.
func (f FrequencyBands) Levels() [BandCount]float64 {
	return [BandCount]float64{f.SubBass, f.Bass, f.LowMid, f.Mid, f.UpperMid, f.Presence, f.Brilliance}
}

// downmixMono averages all channels per frame; mono input is copied as-is.
func downmixMono(buf *audio.Buffer) []float64 {
	if buf.Channels <= 1 {
		out := make([]float64, len(buf.Samples))
		copy(out, buf.Samples)
		return out
	}
	out := make([]float64, buf.TotalFrames)
	for i := 0; i < buf.TotalFrames; i++ {
		sum := 0.0
		for c := 0; c < buf.Channels; c++ {
			sum += buf.Samples[i*buf.Channels+c]
		}
		out[i] = sum / float64(buf.Channels)
	}
	return out
}

// goertzelPower computes the squared DFT magnitude of segment at bin k
// with a single-bin Goertzel recursion, avoiding a full transform.
func goertzelPower(segment []float64, k, n int) float64 {
	omega := 2.0 * math.Pi * float64(k) / float64(n)
	coeff := 2.0 * math.Cos(omega)

	var s0, s1, s2 float64
	for _, sample := range segment {
		s2 = s1
		s1 = s0
		s0 = sample + coeff*s1 - s2
	}
	return s0*s0 + s1*s1 - coeff*s0*s1
}

// binRange converts a band's Hz boundaries to DFT bin indices for an
// n-point window, clamped to the representable [0, n/2] range.
func binRange(spec BandSpec, n int, sampleRate float64) (int, int) {
	kLow := int(math.Round(spec.Low * float64(n) / sampleRate))
	kHigh := int(math.Round(spec.High * float64(n) / sampleRate))
	if kHigh > n/2 {
		kHigh = n / 2
	}
	return kLow, kHigh
}

// frequencyBandsGoertzel estimates per-band energy by probing up to eight
// evenly strided bins per band with Goertzel recursions. This samples the
// band rather than integrating it; the 7-value contract and normalisation
// are identical to the FFT variant.
func frequencyBandsGoertzel(buf *audio.Buffer) FrequencyBands {
	mono := downmixMono(buf)
	if len(mono) == 0 {
		return flooredBands()
	}

	sampleRate := float64(buf.SampleRate)
	windowSize := spectralWindowSize
	if len(mono) < windowSize {
		windowSize = len(mono)
	}
	numWindows := len(mono) / windowSize
	if numWindows < 1 {
		numWindows = 1
	}

	var energies [BandCount]float64
	for w := 0; w < numWindows; w++ {
		start := w * windowSize
		end := start + windowSize
		if end > len(mono) {
			end = len(mono)
		}
		segment := mono[start:end]
		n := len(segment)

		for b, spec := range bandSpecs {
			kLow, kHigh := binRange(spec, n, sampleRate)
			if kLow >= kHigh {
				continue
			}

			probes := kHigh - kLow
			if probes > maxBandProbes {
				probes = maxBandProbes
			}
			step := (kHigh - kLow) / probes
			if step < 1 {
				step = 1
			}

			for k := kLow; k < kHigh; k += step {
				energies[b] += goertzelPower(segment, k, n)
			}
		}
	}

	return normaliseBands(energies)
}

// frequencyBandsFFT integrates every in-band bin of a full transform per
// window. Exact in-band energy under the same windowing and contract.
func frequencyBandsFFT(buf *audio.Buffer) FrequencyBands {
	mono := downmixMono(buf)
	if len(mono) == 0 {
		return flooredBands()
	}

	sampleRate := float64(buf.SampleRate)
	windowSize := spectralWindowSize
	if len(mono) < windowSize {
		windowSize = len(mono)
	}
	numWindows := len(mono) / windowSize
	if numWindows < 1 {
		numWindows = 1
	}

	fft := fourier.NewFFT(windowSize)
	coeffs := make([]complex128, windowSize/2+1)

	var energies [BandCount]float64
	for w := 0; w < numWindows; w++ {
		start := w * windowSize
		end := start + windowSize
		if end > len(mono) {
			end = len(mono)
		}
		segment := mono[start:end]
		n := len(segment)
		if n != fft.Len() {
			fft = fourier.NewFFT(n)
			coeffs = make([]complex128, n/2+1)
		}

		fft.Coefficients(coeffs, segment)

		for b, spec := range bandSpecs {
			kLow, kHigh := binRange(spec, n, sampleRate)
			if kLow >= kHigh {
				continue
			}
			for k := kLow; k < kHigh && k < len(coeffs); k++ {
				mag := cmplx.Abs(coeffs[k])
				energies[b] += mag * mag
			}
		}
	}

	return normaliseBands(energies)
}

// normaliseBands converts accumulated linear energies to relative dB so
// the linear ratios sum to 1. An all-silent accumulation divides by 1
// instead of 0 and floors every band.
func normaliseBands(energies [BandCount]float64) FrequencyBands {
	total := 0.0
	for _, e := range energies {
		total += e
	}
	if total <= energyFloor {
		total = 1.0
	}

	var levels [BandCount]float64
	for i, e := range energies {
		ratio := e / total
		if ratio < energyFloor {
			levels[i] = dbFloor
		} else {
			levels[i] = 10.0 * math.Log10(ratio)
		}
	}

	return FrequencyBands{
		SubBass:    levels[0],
		Bass:       levels[1],
		LowMid:     levels[2],
		Mid:        levels[3],
		UpperMid:   levels[4],
		Presence:   levels[5],
		Brilliance: levels[6],
	}
}

func flooredBands() FrequencyBands {
	return FrequencyBands{
		SubBass:    dbFloor,
		Bass:       dbFloor,
		LowMid:     dbFloor,
		Mid:        dbFloor,
		UpperMid:   dbFloor,
		Presence:   dbFloor,
		Brilliance: dbFloor,
	}
}

// HumPowerDB probes the energy at one frequency (typically the regional
// mains frequency) relative to total signal energy, in dB. The analysis
// facade runs it at the detected mains frequency and reports the result
// alongside the band levels so hum contamination is checkable. Returns
// the -100 floor for silent or empty input.
func HumPowerDB(buf *audio.Buffer, freq float64) float64 {
	mono := downmixMono(buf)
	if len(mono) == 0 {
		return dbFloor
	}

	sampleRate := float64(buf.SampleRate)
	windowSize := spectralWindowSize
	if len(mono) < windowSize {
		windowSize = len(mono)
	}
	numWindows := len(mono) / windowSize
	if numWindows < 1 {
		numWindows = 1
	}

	humEnergy, totalEnergy := 0.0, 0.0
	for w := 0; w < numWindows; w++ {
		start := w * windowSize
		end := start + windowSize
		if end > len(mono) {
			end = len(mono)
		}
		segment := mono[start:end]
		n := len(segment)

		k := int(math.Round(freq * float64(n) / sampleRate))
		if k < 1 || k > n/2 {
			continue
		}
		humEnergy += goertzelPower(segment, k, n)
		for _, s := range segment {
			totalEnergy += s * s * float64(n)
		}
	}

	if totalEnergy <= energyFloor {
		return dbFloor
	}
	ratio := humEnergy / totalEnergy
	if ratio < energyFloor {
		return dbFloor
	}
	return 10.0 * math.Log10(ratio)
}
