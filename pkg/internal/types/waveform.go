package types

// EventSequence is an ordered sequence of event timestamps in seconds.
// It must be strictly sorted ascending before classification; the classifier
// does not re-sort it.
type EventSequence = []float64

// SpikeSequence is an ordered sequence of spike detection timestamps in seconds.
// It may be unsorted relative to the events; each element is classified independently.
type SpikeSequence = []float64

// Waveform is a single fixed-width cutout around one spike timestamp.
// Samples is indexed [sample][channel], i.e. shape (L, C) with L sample points
// over time and C electrode channels (4 per tetrode).
type Waveform struct {
	Samples [][]float64
}

// NewWaveform allocates a zeroed waveform of the given shape.
func NewWaveform(length, channels int) Waveform {
	samples := make([][]float64, length)
	for i := range samples {
		samples[i] = make([]float64, channels)
	}
	return Waveform{Samples: samples}
}

// Len returns the number of sample points (L) in the cutout.
func (w Waveform) Len() int {
	return len(w.Samples)
}

// Channels returns the number of electrode channels (C) in the cutout.
// Zero-length waveforms report zero channels.
func (w Waveform) Channels() int {
	if len(w.Samples) == 0 {
		return 0
	}
	return len(w.Samples[0])
}

// Clone returns a deep copy of the waveform.
func (w Waveform) Clone() Waveform {
	samples := make([][]float64, len(w.Samples))
	for i, row := range w.Samples {
		samples[i] = append([]float64(nil), row...)
	}
	return Waveform{Samples: samples}
}

// WaveformSet is an ordered sequence of waveforms sharing identical (L, C) shape.
// Sets are transient: they are created fresh per invocation from wideband data
// plus timestamps and discarded after plotting or export.
type WaveformSet []Waveform

// Len returns the number of waveforms in the set.
func (s WaveformSet) Len() int {
	return len(s)
}

// Homogeneous reports whether every waveform in the set shares the shape of the
// first one. An empty set is trivially homogeneous.
func (s WaveformSet) Homogeneous() bool {
	if len(s) == 0 {
		return true
	}
	length, channels := s[0].Len(), s[0].Channels()
	for _, w := range s[1:] {
		if w.Len() != length || w.Channels() != channels {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the set.
func (s WaveformSet) Clone() WaveformSet {
	out := make(WaveformSet, len(s))
	for i, w := range s {
		out[i] = w.Clone()
	}
	return out
}
