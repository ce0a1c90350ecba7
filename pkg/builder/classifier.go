package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/classifier"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

// DefaultTaggingWindow is the tagging window applied when none is configured,
// in seconds.
const DefaultTaggingWindow = classifier.DefaultWindow

func NewClassifier(options ...types.Option[types.Classifier]) types.Classifier {
	return classifier.NewClassifier(options...)
}

// ClassifierWithLogger adds loggers to the Classifier.
func ClassifierWithLogger(logger ...types.Logger) types.Option[types.Classifier] {
	return classifier.WithLogger(logger...)
}

// ClassifierWithSensor adds sensors to the Classifier.
func ClassifierWithSensor(sensor ...types.Sensor) types.Option[types.Classifier] {
	return classifier.WithSensor(sensor...)
}

// ClassifierWithWindow sets the tagging window in seconds.
func ClassifierWithWindow(window float64) types.Option[types.Classifier] {
	return classifier.WithWindow(window)
}

// ClassifierWithSortedCheck enables validation that event sequences are sorted.
func ClassifierWithSortedCheck() types.Option[types.Classifier] {
	return classifier.WithSortedCheck()
}
