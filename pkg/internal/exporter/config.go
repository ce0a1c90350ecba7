package exporter

import "github.com/spikeband/spikeband/pkg/internal/types"

// SetComponentMetadata updates the component metadata.
func (e *ParquetExporter) SetComponentMetadata(name string, id string) {
	e.metadataLock.Lock()
	e.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: e.componentMetadata.Type}
	e.metadataLock.Unlock()
}
