package extractor

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the extractor metadata.
func (e *Extractor) GetComponentMetadata() types.ComponentMetadata {
	e.metadataLock.Lock()
	metadata := e.componentMetadata
	e.metadataLock.Unlock()
	return metadata
}
