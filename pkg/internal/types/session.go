package types

import "context"

// Session orchestrates one batch pass over a tetrode recording:
// load, advisory spectral scan, classify, extract, baseline removal, alignment,
// and optional plotting and export. Sessions hold no state between invocations.
type Session interface {
	// ProcessTaggedRecording runs the full pipeline for one tetrode and returns
	// the aligned tagged set and the spontaneous set. When plot is true both
	// sets are also rendered through the attached presenter.
	ProcessTaggedRecording(ctx context.Context, tetrode int, eventTimes EventSequence, spikeTimes SpikeSequence, plot bool) (tagged, spontaneous WaveformSet, err error)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
