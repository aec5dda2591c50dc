package ingest

import (
	"context"
	"fmt"

	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/kbModel"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/embedding"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/segment"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/vectorDB"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

var logger = logger_i.NewLogger("Ingestion")

type RunConfig struct {
	ProfilePath    string
	ResumePath     string
	CollectionName string
}

// Run rebuilds the knowledge base from scratch: resolve sources, drop
// and recreate the collection, then embed and upsert in batches.
// Idempotent across repeated runs. Batches committed before a later
// failure stay committed; there is no cross-run rollback.
func Run(ctx context.Context, cfg RunConfig, em embedding.Embedder, index vectorDB.Index) error {
	sources, err := ResolveSources(cfg.ProfilePath, cfg.ResumePath)
	if err != nil {
		return err
	}

	if err := index.DeleteCollection(ctx, cfg.CollectionName); err != nil {
		return fmt.Errorf("dropping collection %q: %w", cfg.CollectionName, err)
	}
	if err := index.EnsureCollection(ctx, cfg.CollectionName); err != nil {
		return fmt.Errorf("creating collection %q: %w", cfg.CollectionName, err)
	}

	chunks := BuildChunks(sources)
	logger.Info("Rebuilding knowledge base", "sources", len(sources), "chunks", len(chunks))

	return BatchIngest(ctx, cfg.CollectionName, chunks, index, em)
}

// BuildChunks segments every source and tags each window with its
// origin label and ordinal. Chunk ids are "<sourceId>_<ordinal>".
func BuildChunks(sources []kbModel.SourceDocument) []kbModel.Chunk {
	var allChunks []kbModel.Chunk
	for _, doc := range sources {
		pieces := segment.Split(doc.Text, config.ChunkSize, config.ChunkOverlap)
		for i, text := range pieces {
			allChunks = append(allChunks, kbModel.Chunk{
				ChunkId: fmt.Sprintf("%s_%d", doc.Id, i),
				Text:    text,
				Source:  doc.Label,
				Ordinal: i,
			})
		}
	}
	return allChunks
}

// BatchIngest embeds and upserts chunks in fixed-size batches: one
// embedding call and one upsert call per batch, with cumulative
// progress reported after each.
func BatchIngest(ctx context.Context, collectionName string, chunks []kbModel.Chunk, index vectorDB.Index, embedder embedding.Embedder) error {
	batchSize := config.IngestBatchSize
	total := len(chunks)

	for i := 0; i < total; i += batchSize {
		end := i + batchSize
		if end > total {
			end = total
		}
		currentBatch := chunks[i:end]

		texts := make([]string, 0, len(currentBatch))
		for _, c := range currentBatch {
			texts = append(texts, c.Text)
		}

		vectors, err := embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("embedding batch failed: %w", err)
		}

		if err := index.UpsertBatch(ctx, collectionName, currentBatch, vectors); err != nil {
			return fmt.Errorf("upserting batch failed: %w", err)
		}

		logger.Info("Upserted", "progress", fmt.Sprintf("%d/%d", end, total))
	}

	return nil
}
