// Package spectral inspects wideband channels for acquisition problems before
// cutout extraction. The meter computes a power spectrum per channel over a
// bounded segment and summarizes the dominant peaks; its main practical use is
// catching mains hum (50/60 Hz and harmonics) bleeding into a recording, which
// shows up as an implausibly strong narrow peak. Results are advisory only -
// the session logs warnings and keeps going.
package spectral

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

const (
	// DefaultSegmentLength is the per-channel sample count analyzed.
	DefaultSegmentLength = 16384
	// DefaultMainsFrequency is the line frequency checked for hum, in Hz.
	DefaultMainsFrequency = 60.0
	// DefaultSNRThreshold is the mains-to-broadband power ratio above which a
	// channel is flagged.
	DefaultSNRThreshold = 10.0
	// DefaultMaxPeaks bounds the number of reported spectral peaks per channel.
	DefaultMaxPeaks = 5
)

// Meter computes advisory per-channel power spectra.
type Meter struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	segmentLen   int
	mainsFreq    float64
	snrThreshold float64
	maxPeaks     int

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewMeter creates a new Meter configured with the provided options.
func NewMeter(options ...types.Option[types.SpectralMeter]) types.SpectralMeter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			Type: "SPECTRAL_METER",
			ID:   utils.GenerateUniqueHash(),
		},
		segmentLen:   DefaultSegmentLength,
		mainsFreq:    DefaultMainsFrequency,
		snrThreshold: DefaultSNRThreshold,
		maxPeaks:     DefaultMaxPeaks,
		loggers:      make([]types.Logger, 0),
		sensors:      make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}
