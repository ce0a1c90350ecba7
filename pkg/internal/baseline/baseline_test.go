package baseline_test

import (
	"math"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/baseline"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

func makeSet(values [][][]float64) types.WaveformSet {
	set := make(types.WaveformSet, len(values))
	for i, w := range values {
		set[i] = types.Waveform{Samples: w}
	}
	return set
}

func TestChannelMeans_PopulationScalarPerChannel(t *testing.T) {
	b := baseline.NewRemover()

	// Two waveforms, two samples, two channels. Channel 0 values: 1,3,5,7 (mean 4);
	// channel 1 values: 10,10,30,30 (mean 20).
	set := makeSet([][][]float64{
		{{1, 10}, {3, 10}},
		{{5, 30}, {7, 30}},
	})

	means := b.ChannelMeans(set)
	if len(means) != 2 {
		t.Fatalf("expected 2 channel means, got %d", len(means))
	}
	if means[0] != 4 || means[1] != 20 {
		t.Errorf("unexpected means %v", means)
	}
}

func TestRemove_ZeroesPopulationMean(t *testing.T) {
	b := baseline.NewRemover()

	set := makeSet([][][]float64{
		{{1.5, -2}, {2.5, 6}, {0.5, 8}},
		{{-1.5, 4}, {3.5, -6}, {2.0, 2}},
	})

	corrected := b.Remove(set)
	if len(corrected) != len(set) {
		t.Fatalf("set size changed: %d != %d", len(corrected), len(set))
	}

	channels := set[0].Channels()
	sums := make([]float64, channels)
	count := 0
	for _, w := range corrected {
		if w.Len() != set[0].Len() || w.Channels() != channels {
			t.Fatalf("shape changed: got (%d,%d)", w.Len(), w.Channels())
		}
		for _, row := range w.Samples {
			for ch, v := range row {
				sums[ch] += v
			}
		}
		count += w.Len()
	}

	for ch, sum := range sums {
		if mean := sum / float64(count); math.Abs(mean) > 1e-12 {
			t.Errorf("channel %d mean not zero after removal: %g", ch, mean)
		}
	}
}

func TestRemove_DoesNotMutateInput(t *testing.T) {
	b := baseline.NewRemover()

	set := makeSet([][][]float64{{{2, 4}, {6, 8}}})
	_ = b.Remove(set)

	if set[0].Samples[0][0] != 2 || set[0].Samples[1][1] != 8 {
		t.Errorf("input set was mutated: %v", set[0].Samples)
	}
}

func TestRemove_EmptySet(t *testing.T) {
	b := baseline.NewRemover()
	if out := b.Remove(nil); len(out) != 0 {
		t.Errorf("expected empty output for empty input, got %d waveforms", len(out))
	}
	if means := b.ChannelMeans(nil); means != nil {
		t.Errorf("expected nil means for empty input, got %v", means)
	}
}
