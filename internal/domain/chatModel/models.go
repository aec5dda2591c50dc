package chatModel

import (
	"context"
	"time"
)

type ResponderMode string

const (
	ModeOnline  ResponderMode = "online"
	ModeOffline ResponderMode = "offline"
)

// TranscriptEntry is one answered question, kept for operator review.
// It is never fed back into generation.
type TranscriptEntry struct {
	Question string        `json:"question"`
	Answer   string        `json:"answer"`
	Mode     ResponderMode `json:"mode"`
	At       time.Time     `json:"at"`
}

type TranscriptStore interface {
	Record(ctx context.Context, entry TranscriptEntry) error
	Recent(ctx context.Context, limit int) ([]TranscriptEntry, error)
}
