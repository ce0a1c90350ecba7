package presenter

import "github.com/spikeband/spikeband/pkg/internal/types"

// SetComponentMetadata updates the component metadata.
func (p *Presenter) SetComponentMetadata(name string, id string) {
	p.metadataLock.Lock()
	p.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: p.componentMetadata.Type}
	p.metadataLock.Unlock()
}
