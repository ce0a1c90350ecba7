package types

// BaselineRemover corrects constant DC offset introduced by recording hardware.
// The offset is estimated per channel from the full population - one scalar mean
// over all samples of all waveforms in a set - rather than per waveform, which
// would be noisier for short cutouts.
type BaselineRemover interface {
	// Remove returns a new set with the per-channel population mean subtracted
	// from every sample. Shape and order are preserved.
	Remove(set WaveformSet) WaveformSet

	// ChannelMeans returns the per-channel population means Remove would subtract.
	ChannelMeans(set WaveformSet) []float64

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
