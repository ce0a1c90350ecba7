package wideband

import "github.com/spikeband/spikeband/pkg/internal/types"

// SetComponentMetadata updates the component metadata.
func (l *DATLoader) SetComponentMetadata(name string, id string) {
	l.metadataLock.Lock()
	l.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: l.componentMetadata.Type}
	l.metadataLock.Unlock()
}
