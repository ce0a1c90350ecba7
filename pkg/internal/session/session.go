// Package session wires the pipeline components into one batch pass over a
// tetrode recording: load the wideband channels, run an advisory spectral
// scan, partition the spike times, cut out waveforms, remove the DC baseline,
// align the tagged population, and optionally render and export the results.
package session

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

// Session runs the full processing pipeline for one tetrode at a time.
// It holds no state between invocations; collaborators are fixed at build time.
type Session struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	loader     types.WidebandLoader
	classifier types.Classifier
	extractor  types.Extractor
	baseline   types.BaselineRemover
	aligner    types.Aligner
	presenter  types.Presenter
	spectral   types.SpectralMeter
	exporter   types.Exporter

	plotDir   string
	exportDir string

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewSession creates a new Session configured with the provided options.
// The loader, classifier, extractor, baseline remover and aligner are
// required; the presenter only when plotting is requested, and the spectral
// meter and exporter are optional.
func NewSession(options ...types.Option[types.Session]) types.Session {
	s := &Session{
		componentMetadata: types.ComponentMetadata{
			Type: "SESSION",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers: make([]types.Logger, 0),
		sensors: make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}
