package store

import (
	"context"
	"sync"

	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/chatModel"
)

// InMemoryTranscriptStore is the fallback when Redis is offline.
// Entries live only as long as the process.
type InMemoryTranscriptStore struct {
	mu      sync.Mutex
	entries []chatModel.TranscriptEntry
}

func InitInMemoryTranscriptStore() *InMemoryTranscriptStore {
	return &InMemoryTranscriptStore{}
}

func (s *InMemoryTranscriptStore) Record(_ context.Context, entry chatModel.TranscriptEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > config.TranscriptMaxEntries {
		s.entries = s.entries[len(s.entries)-config.TranscriptMaxEntries:]
	}
	return nil
}

func (s *InMemoryTranscriptStore) Recent(_ context.Context, limit int) ([]chatModel.TranscriptEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.entries) {
		limit = len(s.entries)
	}
	recent := make([]chatModel.TranscriptEntry, limit)
	copy(recent, s.entries[len(s.entries)-limit:])
	return recent, nil
}
