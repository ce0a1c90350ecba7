// Package aligner corrects timing jitter in tagged spike waveforms. Spike
// detection can trigger a few samples early or late relative to the dominant
// waveform shape, so each tagged cutout is rotated until its local peak lands
// on the peak location of the spontaneous population.
//
// The reference location is the global maximum of the mean absolute-amplitude
// profile of the spontaneous set. Each tagged waveform is then searched only
// within a small window around that reference - wide enough to correct jitter,
// narrow enough not to lock onto an unrelated peak elsewhere in the cutout -
// and circularly shifted by the difference. The wrap-around artifact at the
// cutout edges is an accepted approximation given the small expected offsets.
package aligner

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

// DefaultSearchRadius is the half-width, in samples, of the local peak search
// window around the reference index.
const DefaultSearchRadius = 6

// Aligner shifts tagged waveforms onto the spontaneous-population peak.
type Aligner struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	searchRadius   int
	maxConcurrency int

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewAligner creates a new Aligner configured with the provided options.
func NewAligner(options ...types.Option[types.Aligner]) types.Aligner {
	a := &Aligner{
		componentMetadata: types.ComponentMetadata{
			Type: "ALIGNER",
			ID:   utils.GenerateUniqueHash(),
		},
		searchRadius:   DefaultSearchRadius,
		maxConcurrency: 1,
		loggers:        make([]types.Logger, 0),
		sensors:        make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(a)
	}

	return a
}
