package classifier

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the classifier metadata.
func (c *Classifier) GetComponentMetadata() types.ComponentMetadata {
	c.metadataLock.Lock()
	metadata := c.componentMetadata
	c.metadataLock.Unlock()
	return metadata
}
