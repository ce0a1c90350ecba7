package aligner_test

import (
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/spikeband/spikeband/pkg/internal/aligner"
	"github.com/spikeband/spikeband/pkg/internal/sensor"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

// flatWaveform builds an (L, C) waveform filled with a small background value.
func flatWaveform(length, channels int, background float64) types.Waveform {
	w := types.NewWaveform(length, channels)
	for s := range w.Samples {
		for ch := range w.Samples[s] {
			w.Samples[s][ch] = background
		}
	}
	return w
}

// rolled reproduces a circular shift of k samples along the time axis.
func rolled(w types.Waveform, k int) types.Waveform {
	length := w.Len()
	out := types.NewWaveform(length, w.Channels())
	for i, row := range w.Samples {
		copy(out.Samples[((i+k)%length+length)%length], row)
	}
	return out
}

func TestReferenceIndex_MeanAbsProfileMax(t *testing.T) {
	a := aligner.NewAligner()

	// Two waveforms; the shared absolute peak sits at sample 5. One waveform
	// carries a negative peak to confirm the profile uses absolute amplitude.
	w1 := flatWaveform(16, 4, 0.1)
	w1.Samples[5][0] = 4.0
	w2 := flatWaveform(16, 4, 0.1)
	w2.Samples[5][2] = -6.0

	if got := a.ReferenceIndex(types.WaveformSet{w1, w2}); got != 5 {
		t.Errorf("expected reference index 5, got %d", got)
	}
}

func TestReferenceIndex_EmptySet(t *testing.T) {
	a := aligner.NewAligner()
	if got := a.ReferenceIndex(nil); got != 0 {
		t.Errorf("expected 0 for empty set, got %d", got)
	}
}

func TestAlign_ConcreteOffsetScenario(t *testing.T) {
	// Spontaneous profile peaks at sample 20.
	spont := flatWaveform(32, 4, 0.1)
	spont.Samples[20][0] = 10.0

	// Tagged waveform: local max abs within [14, 26) at sample 23, plus a much
	// larger peak at sample 2 that the local search must ignore.
	tagged := flatWaveform(32, 4, 0.1)
	tagged.Samples[23][1] = -8.0
	tagged.Samples[2][0] = 50.0

	var offsets []int64
	s := sensor.NewSensor(
		sensor.WithOnWaveformAlignedFunc(func(cm types.ComponentMetadata, index, offset int) {
			offsets = append(offsets, int64(offset))
		}),
	)

	a := aligner.NewAligner(aligner.WithSensor(s))
	out := a.Align(types.WaveformSet{tagged}, types.WaveformSet{spont})

	if len(offsets) != 1 || offsets[0] != 3 {
		t.Fatalf("expected computed offset 3, got %v", offsets)
	}

	expected := rolled(tagged, -3)
	if !reflect.DeepEqual(out[0], expected) {
		t.Errorf("aligned waveform does not equal the -3 circular shift")
	}
	if out[0].Samples[20][1] != -8.0 {
		t.Errorf("local peak did not land on the reference index: %v", out[0].Samples[20])
	}
}

func TestAlign_SelfAlignmentIsIdentity(t *testing.T) {
	a := aligner.NewAligner()

	// The waveform that defines the reference index aligns to itself with
	// offset zero, so a single-waveform set is returned unchanged.
	w := flatWaveform(32, 4, 0.2)
	w.Samples[12][3] = 7.5

	out := a.Align(types.WaveformSet{w}, types.WaveformSet{w})
	if !reflect.DeepEqual(out[0], w) {
		t.Errorf("self-alignment should be the identity")
	}
}

func TestAlign_PreservesShapeAndOrder(t *testing.T) {
	a := aligner.NewAligner()

	spont := flatWaveform(24, 4, 0.1)
	spont.Samples[10][0] = 5.0

	set := make(types.WaveformSet, 5)
	for i := range set {
		w := flatWaveform(24, 4, 0.1)
		// Distinct peaks near the reference, one per waveform.
		w.Samples[8+i][0] = 3.0 + float64(i)
		set[i] = w
	}

	out := a.Align(set, types.WaveformSet{spont})
	if len(out) != len(set) {
		t.Fatalf("set length changed: %d != %d", len(out), len(set))
	}
	for i, w := range out {
		if w.Len() != 24 || w.Channels() != 4 {
			t.Errorf("waveform %d shape changed: (%d,%d)", i, w.Len(), w.Channels())
		}
		// Each waveform's peak must now sit on the reference index.
		if w.Samples[10][0] != 3.0+float64(i) {
			t.Errorf("waveform %d peak not on reference index", i)
		}
	}
}

func TestAlign_ClipsSearchWindowNearEdge(t *testing.T) {
	a := aligner.NewAligner()

	// Reference index 2 < search radius 6: the window clips to [0, 8) instead
	// of failing on a negative lower bound.
	spont := flatWaveform(16, 2, 0.1)
	spont.Samples[2][0] = 9.0

	tagged := flatWaveform(16, 2, 0.1)
	tagged.Samples[4][1] = 6.0

	out := a.Align(types.WaveformSet{tagged}, types.WaveformSet{spont})
	if out[0].Samples[2][1] != 6.0 {
		t.Errorf("peak should land on clipped reference index 2")
	}
}

func TestAlign_EmptyInputs(t *testing.T) {
	a := aligner.NewAligner()

	if out := a.Align(nil, types.WaveformSet{flatWaveform(8, 2, 1)}); len(out) != 0 {
		t.Errorf("empty tagged set should align to empty, got %d", len(out))
	}

	tagged := types.WaveformSet{flatWaveform(8, 2, 1)}
	out := a.Align(tagged, nil)
	if len(out) != 1 || !reflect.DeepEqual(out[0], tagged[0]) {
		t.Errorf("no spontaneous reference: tagged set should come back unshifted")
	}
}

func TestAlign_ConcurrentMatchesSequential(t *testing.T) {
	spont := flatWaveform(32, 4, 0.1)
	spont.Samples[16][0] = 12.0

	set := make(types.WaveformSet, 40)
	for i := range set {
		w := flatWaveform(32, 4, 0.1)
		w.Samples[11+(i%11)][i%4] = 4.0
		set[i] = w
	}

	sequential := aligner.NewAligner()
	concurrent := aligner.NewAligner(aligner.WithMaxConcurrency(8))

	if got := sequential.GetMaxConcurrency(); got != 1 {
		t.Fatalf("expected default worker bound 1, got %d", got)
	}
	if got := concurrent.GetMaxConcurrency(); got != 8 {
		t.Fatalf("expected worker bound 8, got %d", got)
	}

	want := sequential.Align(set, types.WaveformSet{spont})
	got := concurrent.Align(set, types.WaveformSet{spont})

	if !reflect.DeepEqual(got, want) {
		t.Error("concurrent alignment differs from sequential result")
	}
}

func TestAlign_SensorReceivesCompletion(t *testing.T) {
	var refIndex int64 = -1
	var count int64

	s := sensor.NewSensor(
		sensor.WithOnAlignCompleteFunc(func(cm types.ComponentMetadata, ref, n int) {
			atomic.StoreInt64(&refIndex, int64(ref))
			atomic.StoreInt64(&count, int64(n))
		}),
	)

	a := aligner.NewAligner(aligner.WithSensor(s))
	spont := flatWaveform(16, 4, 0.1)
	spont.Samples[7][0] = 5.0

	a.Align(types.WaveformSet{flatWaveform(16, 4, 0.1)}, types.WaveformSet{spont})

	if atomic.LoadInt64(&refIndex) != 7 {
		t.Errorf("expected reference index 7 reported, got %d", refIndex)
	}
	if atomic.LoadInt64(&count) != 1 {
		t.Errorf("expected count 1 reported, got %d", count)
	}
}
