package exporter

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/spikeband/spikeband/pkg/internal/types"
	"github.com/spikeband/spikeband/pkg/internal/utils"
	"github.com/spikeband/spikeband/pkg/logschema"
)

// Export writes both waveform sets to a single Parquet file at path. Every
// channel trace becomes its own row so column pruning on class or channel
// stays cheap for readers. The file is created fresh on each call.
func (e *ParquetExporter) Export(path string, tagged, spontaneous types.WaveformSet) error {
	rows := make([]Row, 0, rowCount(tagged)+rowCount(spontaneous))
	rows = appendRows(rows, ClassTagged, tagged)
	rows = appendRows(rows, ClassSpontaneous, spontaneous)

	f, err := os.Create(path)
	if err != nil {
		e.NotifyLoggers(types.ErrorLevel, "Failed to create export file",
			logschema.FieldComponent, e.componentMetadata.ID, logschema.FieldEvent, "Export", "path", path, logschema.FieldError, err)
		return fmt.Errorf("exporter: create %s: %w", path, err)
	}

	w := parquet.NewGenericWriter[Row](f, parquet.Compression(&parquet.Snappy))
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("exporter: write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("exporter: close writer %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("exporter: close %s: %w", path, err)
	}

	e.NotifyLoggers(types.InfoLevel, "Export complete",
		logschema.FieldComponent, e.componentMetadata.ID, logschema.FieldEvent, "Export", "path", path, "rows", len(rows))
	e.notifyExportComplete(path, len(rows))

	return nil
}

func rowCount(set types.WaveformSet) int {
	n := 0
	for _, w := range set {
		n += w.Channels()
	}
	return n
}

func appendRows(rows []Row, class string, set types.WaveformSet) []Row {
	for i, w := range set {
		for ch := 0; ch < w.Channels(); ch++ {
			samples := utils.Map(w.Samples, func(row []float64) float64 { return row[ch] })
			rows = append(rows, Row{
				Class:   class,
				Index:   int32(i),
				Channel: int32(ch),
				Samples: samples,
			})
		}
	}
	return rows
}
