package rag_test

import (
	"context"

	"github.com/sunzid02/portfolio-chat-api/internal/domain/kbModel"
)

// MockVectorDB implements vectorDB.Index
type MockVectorDB struct {
	// Control fields to simulate different behaviors
	OnQuery            func(ctx context.Context, collection string, vector []float32, k int) ([]kbModel.Retrieved, error)
	OnCount            func(ctx context.Context, collection string) (uint64, error)
	OnDeleteCollection func(ctx context.Context, collection string) error
	OnEnsureCollection func(ctx context.Context, collection string) error
	OnUpsertBatch      func(ctx context.Context, collection string, chunks []kbModel.Chunk, vectors [][]float32) error
}

func (m *MockVectorDB) Query(ctx context.Context, collection string, vector []float32, k int) ([]kbModel.Retrieved, error) {
	if m.OnQuery != nil {
		return m.OnQuery(ctx, collection, vector, k)
	}
	return []kbModel.Retrieved{{Text: "default context", Source: "profile", Part: 0}}, nil
}

func (m *MockVectorDB) Count(ctx context.Context, collection string) (uint64, error) {
	if m.OnCount != nil {
		return m.OnCount(ctx, collection)
	}
	return 0, nil
}

func (m *MockVectorDB) DeleteCollection(ctx context.Context, collection string) error {
	if m.OnDeleteCollection != nil {
		return m.OnDeleteCollection(ctx, collection)
	}
	return nil
}

func (m *MockVectorDB) EnsureCollection(ctx context.Context, collection string) error {
	if m.OnEnsureCollection != nil {
		return m.OnEnsureCollection(ctx, collection)
	}
	return nil
}

func (m *MockVectorDB) UpsertBatch(ctx context.Context, collection string, chunks []kbModel.Chunk, vectors [][]float32) error {
	if m.OnUpsertBatch != nil {
		return m.OnUpsertBatch(ctx, collection, chunks, vectors)
	}
	return nil
}

type MockEmbedder struct {
	OnEmbedQuery func(ctx context.Context, text string) ([]float32, error)
	OnEmbedBatch func(ctx context.Context, texts []string) ([][]float32, error)
}

func (m *MockEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if m.OnEmbedQuery != nil {
		return m.OnEmbedQuery(ctx, text)
	}
	return []float32{0.1}, nil
}

func (m *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if m.OnEmbedBatch != nil {
		return m.OnEmbedBatch(ctx, texts)
	}
	// Return dummy vectors matching batch size
	return make([][]float32, len(texts)), nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, system string, user string) (string, error)
}

func (m *MockLLM) Generate(ctx context.Context, system string, user string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, system, user)
	}
	return "mocked llm response", nil
}
