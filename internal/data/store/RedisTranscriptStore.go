package store

import (
	"context"
	"encoding/json"

	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/data/redisStore"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/chatModel"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

// RedisTranscriptStore keeps answered questions in a capped Redis list
// so an operator can review the most recent conversations.
type RedisTranscriptStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisTranscriptStore returns nil when Redis is unreachable; the
// caller is expected to fall back to the in-memory store.
func GetRedisTranscriptStore(ctx context.Context) *RedisTranscriptStore {
	backing := redisStore.GetRedisStore(ctx, config.RedisTranscriptStore)
	if backing == nil {
		return nil
	}
	return &RedisTranscriptStore{
		store:  backing,
		logger: logger_i.NewLogger("TranscriptStore"),
	}
}

func (s *RedisTranscriptStore) Record(ctx context.Context, entry chatModel.TranscriptEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		s.logger.Error("Error marshalling transcript entry", "error", err)
		return err
	}
	if err := s.store.ListPush(ctx, config.TranscriptKey, data); err != nil {
		s.logger.Error("error saving transcript entry", "error", err)
		return err
	}
	if err := s.store.ListTrimTail(ctx, config.TranscriptKey, config.TranscriptMaxEntries); err != nil {
		s.logger.Error("error trimming transcript", "error", err)
		return err
	}
	return s.store.Expire(ctx, config.TranscriptKey, config.RedisTranscriptTTL)
}

func (s *RedisTranscriptStore) Recent(ctx context.Context, limit int) ([]chatModel.TranscriptEntry, error) {
	raw, err := s.store.ListGetTail(ctx, config.TranscriptKey, int64(limit))
	if err != nil {
		s.logger.Error("error reading transcript", "error", err)
		return nil, err
	}

	entries := make([]chatModel.TranscriptEntry, 0, len(raw))
	for _, item := range raw {
		var entry chatModel.TranscriptEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			s.logger.Error("skipping malformed transcript entry", "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// TestTranscriptStore builds a store around an injected redis client.
func TestTranscriptStore(backing *redisStore.Store) *RedisTranscriptStore {
	return &RedisTranscriptStore{
		store:  backing,
		logger: logger_i.NewLogger("TranscriptStore"),
	}
}
