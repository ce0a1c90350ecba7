package types

// Peak is one local maximum of a channel's power spectrum.
type Peak struct {
	Freq  float64 // Frequency in Hz.
	Power float64 // Spectral power at the peak.
}

// ChannelSpectrum summarizes the spectral content of one wideband channel.
// It is advisory quality information; nothing downstream consumes it beyond
// logging and telemetry.
type ChannelSpectrum struct {
	Channel      int     // 1-based channel number in the source recording.
	DominantFreq float64 // Frequency of the strongest spectral peak, in Hz.
	TotalPower   float64 // Summed power across the analyzed band.
	MainsPower   float64 // Power concentrated at the mains frequency.
	MainsSNR     float64 // Ratio of mains power to mean broadband power.
	Peaks        []Peak  // Strongest peaks, descending by power.
}

// SpectralMeter inspects wideband channels for acquisition problems - most
// usefully mains hum contaminating the recording - before cutout extraction.
type SpectralMeter interface {
	// Scan computes a power spectrum per channel over a bounded segment of the
	// recording and summarizes dominant peaks and mains contamination.
	Scan(rec *Recording) ([]ChannelSpectrum, error)

	// GetMainsFrequency returns the line frequency checked for hum, in Hz.
	GetMainsFrequency() float64

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
