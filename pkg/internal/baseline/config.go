package baseline

import "github.com/spikeband/spikeband/pkg/internal/types"

// SetComponentMetadata updates the component metadata.
func (b *Remover) SetComponentMetadata(name string, id string) {
	b.metadataLock.Lock()
	b.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: b.componentMetadata.Type}
	b.metadataLock.Unlock()
}
