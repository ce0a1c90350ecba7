// Package builder is the public facade of the library. It re-exports the
// internal component constructors, options and shared types so applications
// depend on a single flat package.
package builder

import "github.com/spikeband/spikeband/pkg/internal/types"

// ComponentMetadata identifies a component instance in logs and telemetry.
type ComponentMetadata = types.ComponentMetadata

// Option configures a component of type T at construction time.
type Option[T any] = types.Option[T]

// Component interfaces re-exported for application code, which cannot reach
// the internal packages directly.
type (
	Logger          = types.Logger
	Sensor          = types.Sensor
	WidebandLoader  = types.WidebandLoader
	Classifier      = types.Classifier
	Extractor       = types.Extractor
	BaselineRemover = types.BaselineRemover
	Aligner         = types.Aligner
	Presenter       = types.Presenter
	SpectralMeter   = types.SpectralMeter
	Exporter        = types.Exporter
	Session         = types.Session
)

// Waveform is a single fixed-width cutout, indexed [sample][channel].
type Waveform = types.Waveform

// WaveformSet is an ordered sequence of waveforms sharing identical shape.
type WaveformSet = types.WaveformSet

// EventSequence is an ordered sequence of event timestamps in seconds.
type EventSequence = types.EventSequence

// SpikeSequence is a sequence of spike detection timestamps in seconds.
type SpikeSequence = types.SpikeSequence

// Recording holds a contiguous range of wideband channels loaded from disk.
type Recording = types.Recording

// ChannelsPerTetrode is the number of electrodes in one tetrode bundle.
const ChannelsPerTetrode = types.ChannelsPerTetrode

// NewWaveform allocates a zeroed waveform of the given shape.
func NewWaveform(length, channels int) Waveform {
	return types.NewWaveform(length, channels)
}

// TetrodeChannelRange maps a 1-based tetrode number to its 1-based inclusive
// channel range.
func TetrodeChannelRange(tetrode int) (first, last int) {
	return types.TetrodeChannelRange(tetrode)
}
