package aligner

import "github.com/spikeband/spikeband/pkg/internal/types"

// alignOne shifts a single waveform onto the reference index and reports the
// applied offset to any attached sensors.
func (a *Aligner) alignOne(index int, w types.Waveform, refIndex int) types.Waveform {
	localPeak := a.localPeakIndex(w, refIndex)
	offset := localPeak - refIndex
	shifted := roll(w, -offset)
	a.notifyWaveformAligned(index, offset)
	return shifted
}

// localPeakIndex returns the global sample index of the maximum absolute
// amplitude across all channels within [refIndex-radius, refIndex+radius).
// The window bounds clip to the waveform, silently narrowing the search when
// the reference sits closer than radius to either edge. Ties resolve in
// sample-major scan order.
func (a *Aligner) localPeakIndex(w types.Waveform, refIndex int) int {
	length := w.Len()
	lo := refIndex - a.searchRadius
	if lo < 0 {
		lo = 0
	}
	hi := refIndex + a.searchRadius
	if hi > length {
		hi = length
	}
	if lo >= hi {
		return refIndex
	}

	best := lo
	bestAbs := -1.0
	for s := lo; s < hi; s++ {
		for _, v := range w.Samples[s] {
			if v < 0 {
				v = -v
			}
			if v > bestAbs {
				bestAbs = v
				best = s
			}
		}
	}
	return best
}

// roll applies a circular shift of k samples along the time axis: the sample
// at index i moves to index (i+k) mod L. Channel order is untouched.
func roll(w types.Waveform, k int) types.Waveform {
	length := w.Len()
	if length == 0 {
		return w.Clone()
	}

	k %= length
	if k < 0 {
		k += length
	}

	out := make([][]float64, length)
	for i, row := range w.Samples {
		out[(i+k)%length] = append([]float64(nil), row...)
	}
	return types.Waveform{Samples: out}
}
