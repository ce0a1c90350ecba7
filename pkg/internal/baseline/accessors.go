package baseline

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the baseline remover metadata.
func (b *Remover) GetComponentMetadata() types.ComponentMetadata {
	b.metadataLock.Lock()
	metadata := b.componentMetadata
	b.metadataLock.Unlock()
	return metadata
}
