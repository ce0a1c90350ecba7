package classifier

import "github.com/spikeband/spikeband/pkg/internal/types"

// WithLogger creates an option to add a logger to a Classifier.
func WithLogger(logger ...types.Logger) types.Option[types.Classifier] {
	return func(c types.Classifier) {
		c.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to a Classifier.
func WithSensor(sensor ...types.Sensor) types.Option[types.Classifier] {
	return func(c types.Classifier) {
		c.ConnectSensor(sensor...)
	}
}

// WithWindow sets the tagging window in seconds. Non-positive values are
// ignored and the default window is kept.
func WithWindow(window float64) types.Option[types.Classifier] {
	return func(c types.Classifier) {
		if cl, ok := c.(*Classifier); ok && window > 0 {
			cl.window = window
		}
	}
}

// WithSortedCheck makes Partition validate that events are sorted ascending
// and fail fast with ErrUnsortedEvents instead of relying on caller discipline.
func WithSortedCheck() types.Option[types.Classifier] {
	return func(c types.Classifier) {
		if cl, ok := c.(*Classifier); ok {
			cl.sortedCheck = true
		}
	}
}
