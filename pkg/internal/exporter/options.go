package exporter

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger attaches loggers to the exporter.
func WithLogger(logger ...types.Logger) types.Option[types.Exporter] {
	return func(e types.Exporter) {
		e.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors to the exporter.
func WithSensor(sensor ...types.Sensor) types.Option[types.Exporter] {
	return func(e types.Exporter) {
		e.ConnectSensor(sensor...)
	}
}
