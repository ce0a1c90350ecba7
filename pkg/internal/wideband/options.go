package wideband

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger creates an option to add a logger to a DATLoader.
func WithLogger(logger ...types.Logger) types.Option[types.WidebandLoader] {
	return func(l types.WidebandLoader) {
		l.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to a DATLoader.
func WithSensor(sensor ...types.Sensor) types.Option[types.WidebandLoader] {
	return func(l types.WidebandLoader) {
		l.ConnectSensor(sensor...)
	}
}

// WithPath sets the .dat file the loader reads.
func WithPath(path string) types.Option[types.WidebandLoader] {
	return func(l types.WidebandLoader) {
		if dl, ok := l.(*DATLoader); ok {
			dl.path = path
		}
	}
}

// WithChannelCount sets the number of interleaved channels per frame.
// Values below one are ignored.
func WithChannelCount(count int) types.Option[types.WidebandLoader] {
	return func(l types.WidebandLoader) {
		if dl, ok := l.(*DATLoader); ok && count > 0 {
			dl.channelCount = count
		}
	}
}

// WithSamplingRate sets the acquisition rate in Hz. Non-positive values are
// ignored.
func WithSamplingRate(rate float64) types.Option[types.WidebandLoader] {
	return func(l types.WidebandLoader) {
		if dl, ok := l.(*DATLoader); ok && rate > 0 {
			dl.samplingRate = rate
		}
	}
}

// WithVoltScale sets the multiplier applied to raw int16 counts, typically the
// microvolts-per-bit factor of the acquisition system.
func WithVoltScale(scale float64) types.Option[types.WidebandLoader] {
	return func(l types.WidebandLoader) {
		if dl, ok := l.(*DATLoader); ok && scale != 0 {
			dl.voltScale = scale
		}
	}
}
