package spectral

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger creates an option to add a logger to a Meter.
func WithLogger(logger ...types.Logger) types.Option[types.SpectralMeter] {
	return func(m types.SpectralMeter) {
		m.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to a Meter.
func WithSensor(sensor ...types.Sensor) types.Option[types.SpectralMeter] {
	return func(m types.SpectralMeter) {
		m.ConnectSensor(sensor...)
	}
}

// WithSegmentLength sets the per-channel sample count analyzed. Values below
// two are ignored.
func WithSegmentLength(length int) types.Option[types.SpectralMeter] {
	return func(m types.SpectralMeter) {
		if mt, ok := m.(*Meter); ok && length > 1 {
			mt.segmentLen = length
		}
	}
}

// WithMainsFrequency sets the line frequency checked for hum: 60 Hz by
// default, 50 Hz for recordings made on European mains power.
func WithMainsFrequency(freq float64) types.Option[types.SpectralMeter] {
	return func(m types.SpectralMeter) {
		if mt, ok := m.(*Meter); ok && freq > 0 {
			mt.mainsFreq = freq
		}
	}
}

// WithSNRThreshold sets the mains-to-broadband ratio above which a channel is
// flagged. Non-positive values are ignored.
func WithSNRThreshold(threshold float64) types.Option[types.SpectralMeter] {
	return func(m types.SpectralMeter) {
		if mt, ok := m.(*Meter); ok && threshold > 0 {
			mt.snrThreshold = threshold
		}
	}
}

// WithMaxPeaks bounds the number of reported spectral peaks per channel.
// Values below one are ignored.
func WithMaxPeaks(max int) types.Option[types.SpectralMeter] {
	return func(m types.SpectralMeter) {
		if mt, ok := m.(*Meter); ok && max > 0 {
			mt.maxPeaks = max
		}
	}
}
