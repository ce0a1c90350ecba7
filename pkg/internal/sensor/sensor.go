// Package sensor provides callback hooks for observing the spike processing
// pipeline. Components invoke hooks as they classify, extract, align, render,
// and export; callers register plain functions to observe that progress without
// reaching into component internals.
package sensor

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

// Sensor provides callback hooks for pipeline telemetry.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	callbackLock sync.Mutex

	onClassifyComplete []func(types.ComponentMetadata, int, int)
	onCutoutsExtracted []func(types.ComponentMetadata, int, int, int)
	onBaselineRemoved  []func(types.ComponentMetadata, []float64)
	onWaveformAligned  []func(types.ComponentMetadata, int, int)
	onAlignComplete    []func(types.ComponentMetadata, int, int)
	onSpectralWarning  []func(types.ComponentMetadata, types.ChannelSpectrum)
	onRenderComplete   []func(types.ComponentMetadata, string, int)
	onExportComplete   []func(types.ComponentMetadata, string, int)
	onSessionStart     []func(types.ComponentMetadata, int)
	onSessionComplete  []func(types.ComponentMetadata, int, int, int)

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewSensor creates a new Sensor configured with the provided options.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			Type: "SENSOR",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers: make([]types.Logger, 0),
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}
