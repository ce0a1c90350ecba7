package baseline

import (
	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/logschema"
)

// Remove returns a new set with the per-channel population mean subtracted from
// every sample of every waveform. Shape and order are preserved; the input set
// is not modified. An empty set comes back empty.
func (b *Remover) Remove(set types.WaveformSet) types.WaveformSet {
	means := b.ChannelMeans(set)
	if len(means) == 0 {
		return types.WaveformSet{}
	}

	out := make(types.WaveformSet, len(set))
	for i, w := range set {
		corrected := types.NewWaveform(w.Len(), w.Channels())
		for s, row := range w.Samples {
			for ch, v := range row {
				corrected.Samples[s][ch] = v - means[ch]
			}
		}
		out[i] = corrected
	}

	b.NotifyLoggers(types.DebugLevel, "baseline removed",
		logschema.FieldComponent, b.componentMetadata.ID, logschema.FieldEvent, "Remove",
		"waveforms", len(set), "channels", len(means))
	b.notifyBaselineRemoved(means)

	return out
}

// ChannelMeans returns the per-channel scalar means Remove would subtract:
// for each channel, the mean over all samples of all waveforms in the set.
func (b *Remover) ChannelMeans(set types.WaveformSet) []float64 {
	if len(set) == 0 || set[0].Channels() == 0 {
		return nil
	}

	channels := set[0].Channels()
	sums := make([]float64, channels)
	count := 0
	for _, w := range set {
		for _, row := range w.Samples {
			for ch, v := range row {
				sums[ch] += v
			}
		}
		count += w.Len()
	}
	if count == 0 {
		return nil
	}

	for ch := range sums {
		sums[ch] /= float64(count)
	}
	return sums
}
