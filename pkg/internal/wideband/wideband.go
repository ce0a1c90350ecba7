// Package wideband loads raw continuous voltage traces from flat binary .dat
// files: little-endian int16 samples, channel-interleaved frames, one frame per
// sample point across every acquisition channel. This is the layout produced by
// converting vendor recording formats to plain .dat for offline analysis.
package wideband

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

const (
	// DefaultSamplingRate is the acquisition rate assumed when none is configured.
	DefaultSamplingRate = 32000.0
	// DefaultChannelCount is the number of interleaved channels assumed per frame.
	DefaultChannelCount = 16
)

// DATLoader reads contiguous channel ranges out of an interleaved .dat file.
type DATLoader struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	path         string
	channelCount int
	samplingRate float64
	voltScale    float64

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewDATLoader creates a new DATLoader configured with the provided options.
func NewDATLoader(options ...types.Option[types.WidebandLoader]) types.WidebandLoader {
	l := &DATLoader{
		componentMetadata: types.ComponentMetadata{
			Type: "WIDEBAND_LOADER",
			ID:   utils.GenerateUniqueHash(),
		},
		channelCount: DefaultChannelCount,
		samplingRate: DefaultSamplingRate,
		voltScale:    1.0,
		loggers:      make([]types.Logger, 0),
		sensors:      make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}
