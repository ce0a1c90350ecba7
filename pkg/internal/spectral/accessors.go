package spectral

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the meter metadata.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	m.metadataLock.Lock()
	metadata := m.componentMetadata
	m.metadataLock.Unlock()
	return metadata
}
