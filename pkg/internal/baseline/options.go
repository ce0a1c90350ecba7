package baseline

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger creates an option to add a logger to a Remover.
func WithLogger(logger ...types.Logger) types.Option[types.BaselineRemover] {
	return func(b types.BaselineRemover) {
		b.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to a Remover.
func WithSensor(sensor ...types.Sensor) types.Option[types.BaselineRemover] {
	return func(b types.BaselineRemover) {
		b.ConnectSensor(sensor...)
	}
}
