package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/data/redisStore"
	"github.com/sunzid02/portfolio-chat-api/internal/data/store"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/chatModel"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, *store.RedisTranscriptStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, store.TestTranscriptStore(redisStore.NewTestStore(client))
}

func entry(q string, mode chatModel.ResponderMode) chatModel.TranscriptEntry {
	return chatModel.TranscriptEntry{
		Question: q,
		Answer:   "answer to " + q,
		Mode:     mode,
		At:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisTranscriptStore_Roundtrip(t *testing.T) {
	mr, ts := newTestStore(t)
	ctx := context.Background()

	if err := ts.Record(ctx, entry("what is your stack?", chatModel.ModeOffline)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := ts.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(got))
	}
	if got[0].Question != "what is your stack?" || got[0].Mode != chatModel.ModeOffline {
		t.Errorf("Entry mismatch: %+v", got[0])
	}
	if !got[0].At.Equal(entry("", "").At) {
		t.Errorf("Timestamp did not survive the roundtrip: %v", got[0].At)
	}

	// TTL must be set on the transcript key.
	if mr.TTL(config.TranscriptKey) <= 0 {
		t.Error("Transcript key has no TTL")
	}
}

func TestRedisTranscriptStore_RecentOrderAndLimit(t *testing.T) {
	_, ts := newTestStore(t)
	ctx := context.Background()

	questions := []string{"first", "second", "third", "fourth"}
	for _, q := range questions {
		if err := ts.Record(ctx, entry(q, chatModel.ModeOnline)); err != nil {
			t.Fatalf("Record(%s) failed: %v", q, err)
		}
	}

	got, err := ts.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got))
	}
	// Oldest-first within the returned tail.
	if got[0].Question != "third" || got[1].Question != "fourth" {
		t.Errorf("Wrong tail: %q, %q", got[0].Question, got[1].Question)
	}
}

func TestRedisTranscriptStore_TrimsToCap(t *testing.T) {
	mr, ts := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < config.TranscriptMaxEntries+25; i++ {
		if err := ts.Record(ctx, entry("q", chatModel.ModeOnline)); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	listLen := len(mr.Keys())
	if listLen == 0 {
		t.Fatal("Transcript key missing")
	}
	items, err := mr.List(config.TranscriptKey)
	if err != nil {
		t.Fatalf("reading list from miniredis: %v", err)
	}
	if len(items) != config.TranscriptMaxEntries {
		t.Errorf("List length = %d; want cap %d", len(items), config.TranscriptMaxEntries)
	}
}

func TestInMemoryTranscriptStore(t *testing.T) {
	ts := store.InitInMemoryTranscriptStore()
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c"} {
		if err := ts.Record(ctx, entry(q, chatModel.ModeOffline)); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := ts.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 || got[0].Question != "b" || got[1].Question != "c" {
		t.Errorf("Wrong tail: %+v", got)
	}

	all, _ := ts.Recent(ctx, 100)
	if len(all) != 3 {
		t.Errorf("Expected all 3 entries, got %d", len(all))
	}
}
