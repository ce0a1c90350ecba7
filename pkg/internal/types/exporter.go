package types

// Exporter persists classified waveform sets for downstream analysis.
type Exporter interface {
	// Export writes one record per waveform channel trace for both sets,
	// labeled by class, to the given path.
	Export(path string, tagged, spontaneous WaveformSet) error

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
