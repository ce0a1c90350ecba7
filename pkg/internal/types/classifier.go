package types

// Classifier partitions spike timestamps into tagged and spontaneous subsets
// based on proximity to the nearest preceding event timestamp.
type Classifier interface {
	// Partition splits spikes into the subset falling within the configured
	// window after their nearest preceding event (tagged) and the rest
	// (spontaneous). The events sequence must be sorted ascending; unless the
	// classifier was built with sorted-input validation, unsorted events yield
	// an incorrect but non-crashing result. The partition is stable: relative
	// spike order is preserved within each subset, and every input timestamp
	// appears in exactly one subset.
	Partition(events EventSequence, spikes SpikeSequence) (tagged, spontaneous SpikeSequence, err error)

	// GetWindow returns the tagging window in seconds.
	GetWindow() float64

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
