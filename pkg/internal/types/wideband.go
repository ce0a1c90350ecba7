package types

import "context"

// ChannelsPerTetrode is the number of closely spaced electrodes in one tetrode bundle.
const ChannelsPerTetrode = 4

// Recording holds a contiguous range of wideband channels loaded from disk.
// Samples is indexed [channel][sample]; all channels share the same length and
// sampling rate. FirstChannel records the 1-based index of Samples[0] in the
// source recording.
type Recording struct {
	Samples      [][]float64
	SamplingRate float64
	FirstChannel int
}

// Channels returns the number of channels held by the recording.
func (r *Recording) Channels() int {
	return len(r.Samples)
}

// Len returns the per-channel sample count, or zero for an empty recording.
func (r *Recording) Len() int {
	if len(r.Samples) == 0 {
		return 0
	}
	return len(r.Samples[0])
}

// TetrodeChannelRange maps a 1-based tetrode number to its 1-based inclusive
// channel range: tetrode 1 covers channels 1-4, tetrode 2 covers 5-8, and so on.
func TetrodeChannelRange(tetrode int) (first, last int) {
	first = (tetrode-1)*ChannelsPerTetrode + 1
	last = tetrode * ChannelsPerTetrode
	return first, last
}

// WidebandLoader supplies raw multi-channel voltage traces for a contiguous
// channel range, uniformly sampled at the recording's acquisition rate.
type WidebandLoader interface {
	// Load reads the requested 1-based inclusive channel range.
	Load(ctx context.Context, firstChannel, lastChannel int) (*Recording, error)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
