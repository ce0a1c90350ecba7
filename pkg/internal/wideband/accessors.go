package wideband

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the loader metadata.
func (l *DATLoader) GetComponentMetadata() types.ComponentMetadata {
	l.metadataLock.Lock()
	metadata := l.componentMetadata
	l.metadataLock.Unlock()
	return metadata
}
