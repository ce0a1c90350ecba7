package spectral_test

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/sensor"
	"github.com/spikeband/spikeband/pkg/internal/spectral"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

// sineRecording builds a single-channel recording holding a pure sine.
func sineRecording(freq, rate float64, samples int) *types.Recording {
	trace := make([]float64, samples)
	for i := range trace {
		trace[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}
	return &types.Recording{
		Samples:      [][]float64{trace},
		SamplingRate: rate,
		FirstChannel: 1,
	}
}

func TestScan_FindsDominantFrequency(t *testing.T) {
	m := spectral.NewMeter(spectral.WithSegmentLength(4096))

	rec := sineRecording(440, 8192, 4096)
	spectra, err := m.Scan(rec)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(spectra) != 1 {
		t.Fatalf("expected one channel spectrum, got %d", len(spectra))
	}

	got := spectra[0].DominantFreq
	if math.Abs(got-440) > 8192.0/4096 {
		t.Errorf("dominant frequency off: got %v, want ~440", got)
	}
	if spectra[0].Channel != 1 {
		t.Errorf("expected channel 1, got %d", spectra[0].Channel)
	}
	if len(spectra[0].Peaks) == 0 {
		t.Error("expected at least one reported peak")
	}
	if spectra[0].TotalPower <= 0 {
		t.Error("expected positive total power")
	}
}

func TestScan_FlagsMainsHum(t *testing.T) {
	var flagged int32
	s := sensor.NewSensor(
		sensor.WithOnSpectralWarningFunc(func(cm types.ComponentMetadata, spec types.ChannelSpectrum) {
			atomic.AddInt32(&flagged, 1)
			if spec.MainsSNR <= 10 {
				t.Errorf("flagged channel should exceed threshold, got %v", spec.MainsSNR)
			}
		}),
	)

	m := spectral.NewMeter(
		spectral.WithSensor(s),
		spectral.WithSegmentLength(8192),
		spectral.WithMainsFrequency(60),
	)

	// 60 Hz hum plus mild broadband noise.
	rec := sineRecording(60, 8192, 8192)
	for i := range rec.Samples[0] {
		rec.Samples[0][i] = 5*rec.Samples[0][i] + 0.01*math.Sin(float64(i)*1.7)
	}

	if _, err := m.Scan(rec); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if atomic.LoadInt32(&flagged) != 1 {
		t.Errorf("expected one mains warning, got %d", flagged)
	}
}

func TestScan_CleanChannelNotFlagged(t *testing.T) {
	var flagged int32
	s := sensor.NewSensor(
		sensor.WithOnSpectralWarningFunc(func(types.ComponentMetadata, types.ChannelSpectrum) {
			atomic.AddInt32(&flagged, 1)
		}),
	)

	m := spectral.NewMeter(spectral.WithSensor(s), spectral.WithSegmentLength(4096))

	// A 2 kHz tone far from mains should not trip the hum check.
	rec := sineRecording(2000, 8192, 4096)
	if _, err := m.Scan(rec); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if atomic.LoadInt32(&flagged) != 0 {
		t.Errorf("clean channel was flagged %d times", flagged)
	}
}

func TestScan_EmptyRecording(t *testing.T) {
	m := spectral.NewMeter()
	if _, err := m.Scan(nil); !errors.Is(err, spectral.ErrEmptyRecording) {
		t.Fatalf("expected ErrEmptyRecording, got %v", err)
	}
}

func TestScan_ShortTraceClipsSegment(t *testing.T) {
	m := spectral.NewMeter(spectral.WithSegmentLength(1 << 20))

	rec := sineRecording(100, 1000, 512)
	spectra, err := m.Scan(rec)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if math.Abs(spectra[0].DominantFreq-100) > 1000.0/512+1e-9 {
		t.Errorf("dominant frequency off on short trace: %v", spectra[0].DominantFreq)
	}
}

func TestMeterDefaults(t *testing.T) {
	m := spectral.NewMeter()
	if m.GetMainsFrequency() != 60 {
		t.Errorf("expected 60 Hz default mains frequency, got %v", m.GetMainsFrequency())
	}
}
