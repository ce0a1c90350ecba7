package aligner

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the aligner metadata.
func (a *Aligner) GetComponentMetadata() types.ComponentMetadata {
	a.metadataLock.Lock()
	metadata := a.componentMetadata
	a.metadataLock.Unlock()
	return metadata
}
