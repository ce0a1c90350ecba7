// Package extractor cuts fixed-width waveform snippets out of a loaded
// wideband recording, one per spike timestamp. Every cutout includes a
// configurable number of samples before the spike so the rising edge of the
// waveform is visible, and all cutouts from one call share the same (L, C)
// shape.
package extractor

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

const (
	// DefaultNumPre is the number of samples included before the spike sample.
	DefaultNumPre = 9
	// DefaultCutoutLength is the total sample count of each cutout.
	DefaultCutoutLength = 32
)

// Extractor produces waveform cutouts around spike timestamps.
type Extractor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	numPre    int
	cutoutLen int

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewExtractor creates a new Extractor configured with the provided options.
func NewExtractor(options ...types.Option[types.Extractor]) types.Extractor {
	e := &Extractor{
		componentMetadata: types.ComponentMetadata{
			Type: "EXTRACTOR",
			ID:   utils.GenerateUniqueHash(),
		},
		numPre:    DefaultNumPre,
		cutoutLen: DefaultCutoutLength,
		loggers:   make([]types.Logger, 0),
		sensors:   make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}
