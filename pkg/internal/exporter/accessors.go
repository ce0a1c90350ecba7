package exporter

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the exporter metadata.
func (e *ParquetExporter) GetComponentMetadata() types.ComponentMetadata {
	e.metadataLock.Lock()
	metadata := e.componentMetadata
	e.metadataLock.Unlock()
	return metadata
}
