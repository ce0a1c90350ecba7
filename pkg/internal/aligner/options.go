package aligner

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger creates an option to add a logger to an Aligner.
func WithLogger(logger ...types.Logger) types.Option[types.Aligner] {
	return func(a types.Aligner) {
		a.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to an Aligner.
func WithSensor(sensor ...types.Sensor) types.Option[types.Aligner] {
	return func(a types.Aligner) {
		a.ConnectSensor(sensor...)
	}
}

// WithSearchRadius sets the half-width of the local peak search window in
// samples. Non-positive values are ignored and the default radius is kept.
func WithSearchRadius(radius int) types.Option[types.Aligner] {
	return func(a types.Aligner) {
		if al, ok := a.(*Aligner); ok && radius > 0 {
			al.searchRadius = radius
		}
	}
}

// WithMaxConcurrency bounds the per-waveform alignment worker fan-out.
// Values below one are treated as sequential processing.
func WithMaxConcurrency(n int) types.Option[types.Aligner] {
	return func(a types.Aligner) {
		if al, ok := a.(*Aligner); ok {
			if n < 1 {
				n = 1
			}
			al.maxConcurrency = n
		}
	}
}
