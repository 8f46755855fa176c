package metrics

import (
	"math"
	"testing"
)

func TestRMSDB(t *testing.T) {
	t.Run("empty_input_reports_floor", func(t *testing.T) {
		if got := RMSDB(nil); got != dbFloor {
			t.Errorf("RMSDB(nil) = %.2f, want %.2f", got, dbFloor)
		}
	})

	t.Run("digital_silence_reports_floor", func(t *testing.T) {
		if got := RMSDB(make([]float64, 4410)); got != dbFloor {
			t.Errorf("RMSDB(silence) = %.2f, want %.2f", got, dbFloor)
		}
	})

	t.Run("full_scale_square_is_zero", func(t *testing.T) {
		samples := make([]float64, 1000)
		for i := range samples {
			samples[i] = 1.0
		}
		assertClose(t, "RMSDB", RMSDB(samples), 0.0, 0.01)
	})

	t.Run("full_scale_sine_is_minus_3", func(t *testing.T) {
		samples := sineSamples(441.0, 1.0, 44100, 44100)
		assertClose(t, "RMSDB", RMSDB(samples), -3.01, 0.05)
	})
}

func TestPeakDB(t *testing.T) {
	t.Run("silence_reports_floor", func(t *testing.T) {
		if got := PeakDB(make([]float64, 100)); got != dbFloor {
			t.Errorf("PeakDB(silence) = %.2f, want %.2f", got, dbFloor)
		}
	})

	t.Run("full_scale_sine_peaks_at_zero", func(t *testing.T) {
		samples := sineSamples(441.0, 1.0, 44100, 44100)
		assertClose(t, "PeakDB", PeakDB(samples), 0.0, 0.01)
	})

	t.Run("half_scale_peak", func(t *testing.T) {
		samples := sineSamples(441.0, 0.5, 44100, 44100)
		assertClose(t, "PeakDB", PeakDB(samples), -6.02, 0.05)
	})

	t.Run("negative_excursions_count", func(t *testing.T) {
		samples := []float64{0.1, -0.9, 0.2}
		assertClose(t, "PeakDB", PeakDB(samples), 20.0*math.Log10(0.9), 0.001)
	})
}

func TestTruePeakDB(t *testing.T) {
	assertClose(t, "TruePeakDB", TruePeakDB(-6.0), -5.8, 0.0001)
	assertClose(t, "TruePeakDB", TruePeakDB(dbFloor), dbFloor+truePeakOffsetDB, 0.0001)
}
