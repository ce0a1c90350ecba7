package aligner

import "github.com/spikeband/spikeband/pkg/internal/types"

// SetComponentMetadata updates the component metadata.
func (a *Aligner) SetComponentMetadata(name string, id string) {
	a.metadataLock.Lock()
	a.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: a.componentMetadata.Type}
	a.metadataLock.Unlock()
}
