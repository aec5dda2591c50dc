package rag

import (
	"context"
	"time"

	"github.com/sunzid02/portfolio-chat-api/internal/api"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/kbModel"
	"github.com/sunzid02/portfolio-chat-api/internal/metrics"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/embedding"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/llm"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/vectorDB"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

// Service is the online responder: embed the question, fetch the
// nearest chunks, synthesize a grounded reply. The handler only sees
// this contract, never the clients behind it.
type Service interface {
	Answer(ctx context.Context, question string) (api.ChatReply, error)
}

type service struct {
	vectorDB    vectorDB.Index
	llmProvider llm.Provider
	embedder    embedding.Embedder
	collection  string
	logger      *logger_i.Logger
}

// NewService constructor
func NewService(index vectorDB.Index, provider llm.Provider, em embedding.Embedder) Service {
	return &service{
		vectorDB:    index,
		llmProvider: provider,
		embedder:    em,
		collection:  config.CollectionName,
		logger:      logger_i.NewLogger("RAG Service"),
	}
}

// Answer chains the request sequentially: embed -> query -> generate.
// No internal retries; any dependency error surfaces to the caller.
func (s *service) Answer(ctx context.Context, question string) (api.ChatReply, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	hits, err := s.retrieve(ctx, question, config.RetrieveTopK)
	if err != nil {
		log.Error("retrieval failed", "error", err)
		return api.ChatReply{}, err
	}
	log.Debug("retrieved context", "hits", len(hits))

	return s.synthesize(ctx, question, hits)
}

// retrieve embeds the query as a single-item batch and runs one
// nearest-neighbor query. Hits keep the index-returned order; there is
// no client-side re-ranking.
func (s *service) retrieve(ctx context.Context, query string, k int) ([]kbModel.Retrieved, error) {
	start := time.Now()
	vector, err := s.embedder.EmbedQuery(ctx, query)
	metrics.CaptureExecutionMetrics("embedding", time.Since(start))
	if err != nil {
		return nil, err
	}

	start = time.Now()
	hits, err := s.vectorDB.Query(ctx, s.collection, vector, k)
	metrics.CaptureExecutionMetrics("vector_search", time.Since(start))
	return hits, err
}
