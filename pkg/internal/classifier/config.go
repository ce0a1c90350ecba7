package classifier

import "github.com/spikeband/spikeband/pkg/internal/types"

// SetComponentMetadata updates the component metadata.
func (c *Classifier) SetComponentMetadata(name string, id string) {
	c.metadataLock.Lock()
	c.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: c.componentMetadata.Type}
	c.metadataLock.Unlock()
}
