package vectorDB

import (
	"context"

	"github.com/sunzid02/portfolio-chat-api/internal/domain/kbModel"
)

// Index is the vector database contract. Distances returned by Query
// are monotonic "smaller is closer" values; no specific formula is
// assumed by callers.
type Index interface {
	Query(ctx context.Context, collectionName string, vector []float32, k int) ([]kbModel.Retrieved, error)
	Count(ctx context.Context, collectionName string) (uint64, error)

	// Ingestion calls
	DeleteCollection(ctx context.Context, collectionName string) error
	EnsureCollection(ctx context.Context, collectionName string) error
	UpsertBatch(ctx context.Context, collectionName string, chunks []kbModel.Chunk, vectors [][]float32) error
}
