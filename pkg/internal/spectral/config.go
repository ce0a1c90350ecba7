package spectral

import "github.com/spikeband/spikeband/pkg/internal/types"

// SetComponentMetadata updates the component metadata.
func (m *Meter) SetComponentMetadata(name string, id string) {
	m.metadataLock.Lock()
	m.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: m.componentMetadata.Type}
	m.metadataLock.Unlock()
}
