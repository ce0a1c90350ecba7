// Package classifier partitions spike timestamps into tagged and spontaneous
// subsets. A spike is tagged when it falls within a short latency window after
// its nearest preceding experimental event; everything else is spontaneous.
//
// The lookup is a binary search over the event sequence, so events must be
// sorted ascending. By default that is a caller contract - unsorted events
// yield an incorrect but non-crashing partition. Building the classifier with
// WithSortedCheck turns the contract into an up-front validation that fails
// fast with ErrUnsortedEvents.
package classifier

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

// DefaultWindow is the tagging window in seconds applied when no
// WithWindow option is given.
const DefaultWindow = 0.01

// Classifier assigns spike timestamps to the tagged or spontaneous class.
type Classifier struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	window      float64
	sortedCheck bool

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewClassifier creates a new Classifier configured with the provided options.
func NewClassifier(options ...types.Option[types.Classifier]) types.Classifier {
	c := &Classifier{
		componentMetadata: types.ComponentMetadata{
			Type: "CLASSIFIER",
			ID:   utils.GenerateUniqueHash(),
		},
		window:  DefaultWindow,
		loggers: make([]types.Logger, 0),
		sensors: make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}
