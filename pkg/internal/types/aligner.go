package types

// Aligner corrects small timing jitter in tagged waveforms by rotating each one
// so that its local peak lands on the dominant peak location of the spontaneous
// population.
type Aligner interface {
	// Align shifts each tagged waveform to the reference peak derived from the
	// spontaneous set. The returned set has the same order and shape as the
	// tagged input; the spontaneous set is only read.
	Align(tagged, spontaneous WaveformSet) WaveformSet

	// ReferenceIndex returns the sample index of the global maximum of the
	// mean absolute-amplitude profile of the given set.
	ReferenceIndex(set WaveformSet) int

	// GetSearchRadius returns the half-width of the local peak search window.
	GetSearchRadius() int

	// GetMaxConcurrency returns the per-waveform alignment worker bound;
	// one means sequential.
	GetMaxConcurrency() int

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
