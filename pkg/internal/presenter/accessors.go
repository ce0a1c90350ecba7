package presenter

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the presenter metadata.
func (p *Presenter) GetComponentMetadata() types.ComponentMetadata {
	p.metadataLock.Lock()
	metadata := p.componentMetadata
	p.metadataLock.Unlock()
	return metadata
}
