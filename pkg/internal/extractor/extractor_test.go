package extractor_test

import (
	"errors"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/extractor"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

// rampRecording builds a recording where channel ch sample s holds
// float64(ch*10000 + s), so cutout placement is directly checkable.
func rampRecording(channels, samples int, rate float64) *types.Recording {
	rec := &types.Recording{SamplingRate: rate, FirstChannel: 1}
	rec.Samples = make([][]float64, channels)
	for ch := range rec.Samples {
		rec.Samples[ch] = make([]float64, samples)
		for s := range rec.Samples[ch] {
			rec.Samples[ch][s] = float64(ch*10000 + s)
		}
	}
	return rec
}

func TestExtract_CutoutPlacement(t *testing.T) {
	e := extractor.NewExtractor(
		extractor.WithNumPre(9),
		extractor.WithCutoutLength(32),
	)

	rec := rampRecording(4, 2000, 1000) // 1 kHz keeps the index math readable

	// Timestamp 0.5 s -> sample 500; the cutout starts at 500-9 = 491.
	set, err := e.Extract(rec, []float64{0.5})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("expected one cutout, got %d", len(set))
	}

	w := set[0]
	if w.Len() != 32 || w.Channels() != 4 {
		t.Fatalf("unexpected shape (%d,%d)", w.Len(), w.Channels())
	}
	if w.Samples[0][0] != 491 {
		t.Errorf("cutout should start 9 samples before the spike, got %v", w.Samples[0][0])
	}
	if w.Samples[9][0] != 500 {
		t.Errorf("spike sample should sit at index numPre, got %v", w.Samples[9][0])
	}
	if w.Samples[9][3] != 30500 {
		t.Errorf("channel 3 should read from its own trace, got %v", w.Samples[9][3])
	}
}

func TestExtract_SkipsOutOfRangeTimestamps(t *testing.T) {
	e := extractor.NewExtractor(
		extractor.WithNumPre(9),
		extractor.WithCutoutLength(32),
	)

	rec := rampRecording(2, 100, 1000)

	// 0.005 s -> sample 5, start would be negative; 0.095 s -> sample 95,
	// cutout would run past the end; 0.05 s fits.
	set, err := e.Extract(rec, []float64{0.005, 0.05, 0.095})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("expected only the in-range timestamp, got %d cutouts", len(set))
	}
	if set[0].Samples[9][0] != 50 {
		t.Errorf("surviving cutout should be centered on sample 50, got %v", set[0].Samples[9][0])
	}
}

func TestExtract_HomogeneousShapes(t *testing.T) {
	e := extractor.NewExtractor(extractor.WithCutoutLength(16), extractor.WithNumPre(4))

	rec := rampRecording(4, 1000, 1000)
	set, err := e.Extract(rec, []float64{0.1, 0.2, 0.3, 0.4})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(set) != 4 {
		t.Fatalf("expected 4 cutouts, got %d", len(set))
	}
	if !set.Homogeneous() {
		t.Error("cutouts must share an identical shape")
	}
	if set[0].Len() != 16 {
		t.Errorf("expected configured cutout length 16, got %d", set[0].Len())
	}
}

func TestExtract_EmptyRecording(t *testing.T) {
	e := extractor.NewExtractor()

	_, err := e.Extract(nil, []float64{0.1})
	if !errors.Is(err, extractor.ErrEmptyRecording) {
		t.Fatalf("expected ErrEmptyRecording for nil recording, got %v", err)
	}

	_, err = e.Extract(&types.Recording{SamplingRate: 1000}, []float64{0.1})
	if !errors.Is(err, extractor.ErrEmptyRecording) {
		t.Fatalf("expected ErrEmptyRecording for channel-less recording, got %v", err)
	}
}

func TestExtractorDefaults(t *testing.T) {
	e := extractor.NewExtractor()
	if e.GetNumPre() != 9 {
		t.Errorf("expected default numPre 9, got %d", e.GetNumPre())
	}
	if e.GetCutoutLength() != 32 {
		t.Errorf("expected default cutout length 32, got %d", e.GetCutoutLength())
	}
}
