package extractor

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger creates an option to add a logger to an Extractor.
func WithLogger(logger ...types.Logger) types.Option[types.Extractor] {
	return func(e types.Extractor) {
		e.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to an Extractor.
func WithSensor(sensor ...types.Sensor) types.Option[types.Extractor] {
	return func(e types.Extractor) {
		e.ConnectSensor(sensor...)
	}
}

// WithNumPre sets the number of samples included before the spike sample.
// Negative values are ignored.
func WithNumPre(numPre int) types.Option[types.Extractor] {
	return func(e types.Extractor) {
		if ex, ok := e.(*Extractor); ok && numPre >= 0 {
			ex.numPre = numPre
		}
	}
}

// WithCutoutLength sets the total sample count of each cutout. Values below
// one are ignored.
func WithCutoutLength(length int) types.Option[types.Extractor] {
	return func(e types.Extractor) {
		if ex, ok := e.(*Extractor); ok && length > 0 {
			ex.cutoutLen = length
		}
	}
}
