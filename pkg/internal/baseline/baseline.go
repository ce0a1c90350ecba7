// Package baseline removes the constant DC offset that recording hardware
// introduces into wideband cutouts. The offset is estimated per channel from
// the whole population - one scalar mean over every sample of every waveform
// in a set - which is a far more stable estimate than per-waveform baselines
// over short cutouts.
package baseline

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

// Remover subtracts population per-channel means from waveform sets.
type Remover struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewRemover creates a new Remover configured with the provided options.
func NewRemover(options ...types.Option[types.BaselineRemover]) types.BaselineRemover {
	b := &Remover{
		componentMetadata: types.ComponentMetadata{
			Type: "BASELINE_REMOVER",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers: make([]types.Logger, 0),
		sensors: make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}
