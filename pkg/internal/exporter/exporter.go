// Package exporter persists classified waveform sets as Parquet files so the
// final cutouts can be picked up by notebook or warehouse tooling without
// re-running the pipeline. One row is written per waveform channel trace,
// labeled with its class and position within the set.
package exporter

import (
	"sync"

	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
)

// Class labels attached to exported rows.
const (
	ClassTagged      = "tagged"
	ClassSpontaneous = "spontaneous"
)

// Row is one exported record: a single channel trace of a single waveform.
type Row struct {
	Class   string    `parquet:"class,dict"`
	Index   int32     `parquet:"index"`
	Channel int32     `parquet:"channel"`
	Samples []float64 `parquet:"samples,list"`
}

// ParquetExporter writes waveform sets to Parquet files.
type ParquetExporter struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewParquetExporter creates a new ParquetExporter configured with the
// provided options.
func NewParquetExporter(options ...types.Option[types.Exporter]) types.Exporter {
	e := &ParquetExporter{
		componentMetadata: types.ComponentMetadata{
			Type: "EXPORTER",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers: make([]types.Logger, 0),
		sensors: make([]types.Sensor, 0),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}
