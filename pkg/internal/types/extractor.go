package types

// Extractor produces fixed-width waveform cutouts around spike timestamps from
// a loaded wideband recording. Every cutout in a returned set shares the same
// (L, C) shape; timestamps whose window would fall outside the recording are
// skipped rather than padded.
type Extractor interface {
	// Extract returns one cutout per usable timestamp, with the configured
	// number of pre-spike samples ahead of each timestamp's sample index.
	Extract(rec *Recording, timestamps SpikeSequence) (WaveformSet, error)

	// GetNumPre returns the number of samples included before the spike sample.
	GetNumPre() int

	// GetCutoutLength returns the total sample count L of each cutout.
	GetCutoutLength() int

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
