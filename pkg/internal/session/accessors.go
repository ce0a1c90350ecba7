package session

import "github.com/spikeband/spikeband/pkg/internal/types"

// GetComponentMetadata returns the session metadata.
func (s *Session) GetComponentMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	metadata := s.componentMetadata
	s.metadataLock.Unlock()
	return metadata
}
