package aligner

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/logschema"
	"gonum.org/v1/gonum/floats"
)

// Align rotates each tagged waveform so that its local peak lands on the
// reference index derived from the spontaneous set. The returned set has the
// same order and shape as the tagged input; neither input set is modified.
//
// An empty spontaneous set leaves no reference to align against, so the tagged
// set is returned as an unshifted copy. Per-waveform alignment is independent,
// and with WithMaxConcurrency above one the waveforms are processed by a
// bounded worker fan-out with an ordered gather; results are identical to the
// sequential pass.
func (a *Aligner) Align(tagged, spontaneous types.WaveformSet) types.WaveformSet {
	if len(tagged) == 0 {
		return types.WaveformSet{}
	}
	if len(spontaneous) == 0 {
		a.NotifyLoggers(types.WarnLevel, "no spontaneous waveforms to align against",
			logschema.FieldComponent, a.componentMetadata.ID, logschema.FieldEvent, "Align", "tagged", len(tagged))
		return tagged.Clone()
	}

	refIndex := a.ReferenceIndex(spontaneous)
	out := make(types.WaveformSet, len(tagged))

	if a.maxConcurrency > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, a.maxConcurrency)
		for i, w := range tagged {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, w types.Waveform) {
				defer wg.Done()
				defer func() { <-sem }()
				out[i] = a.alignOne(i, w, refIndex)
			}(i, w)
		}
		wg.Wait()
	} else {
		for i, w := range tagged {
			out[i] = a.alignOne(i, w, refIndex)
		}
	}

	a.NotifyLoggers(types.InfoLevel, "aligning tagged spikes complete",
		logschema.FieldComponent, a.componentMetadata.ID, logschema.FieldEvent, "Align",
		"refIndex", refIndex, "count", len(tagged))
	a.notifyAlignComplete(refIndex, len(tagged))

	return out
}

// ReferenceIndex returns the sample index of the global maximum of the mean
// absolute-amplitude profile of the given set: for each sample index, the mean
// of |amplitude| over all waveforms and all channels. Ties resolve to the
// earliest index. An empty or zero-length set yields index 0.
func (a *Aligner) ReferenceIndex(set types.WaveformSet) int {
	if len(set) == 0 || set[0].Len() == 0 {
		return 0
	}

	length := set[0].Len()
	profile := make([]float64, length)
	count := 0
	for _, w := range set {
		for s, row := range w.Samples {
			for _, v := range row {
				if v < 0 {
					v = -v
				}
				profile[s] += v
			}
		}
		count += w.Channels()
	}
	if count > 0 {
		floats.Scale(1/float64(count), profile)
	}

	return floats.MaxIdx(profile)
}

// GetSearchRadius returns the half-width of the local peak search window.
func (a *Aligner) GetSearchRadius() int {
	return a.searchRadius
}

// GetMaxConcurrency returns the per-waveform alignment worker bound.
func (a *Aligner) GetMaxConcurrency() int {
	return a.maxConcurrency
}
