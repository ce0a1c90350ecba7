package builder

import (
	"github.com/spikeband/spikeband/pkg/internal/exporter"
	"github.com/spikeband/spikeband/pkg/internal/types"
)

// ExportRow is one exported Parquet record: a single channel trace of a
// single waveform.
type ExportRow = exporter.Row

func NewParquetExporter(options ...types.Option[types.Exporter]) types.Exporter {
	return exporter.NewParquetExporter(options...)
}

// ParquetExporterWithLogger adds loggers to the ParquetExporter.
func ParquetExporterWithLogger(logger ...types.Logger) types.Option[types.Exporter] {
	return exporter.WithLogger(logger...)
}

// ParquetExporterWithSensor adds sensors to the ParquetExporter.
func ParquetExporterWithSensor(sensor ...types.Sensor) types.Option[types.Exporter] {
	return exporter.WithSensor(sensor...)
}
