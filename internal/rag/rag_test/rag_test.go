package rag_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/kbModel"
	"github.com/sunzid02/portfolio-chat-api/internal/rag"
)

func testHits(n int) []kbModel.Retrieved {
	hits := make([]kbModel.Retrieved, n)
	for i := range hits {
		hits[i] = kbModel.Retrieved{
			Text:     "chunk text",
			Source:   "profile",
			Part:     i,
			Distance: float32(i) * 0.1,
		}
	}
	return hits
}

func TestAnswer_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		setupMocks      func(e *MockEmbedder, v *MockVectorDB, l *MockLLM)
		expectedAnswer  string
		expectedSources int
		expectedErr     string
	}{
		{
			name: "Success_Full_Flow",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				v.OnQuery = func(ctx context.Context, c string, vec []float32, k int) ([]kbModel.Retrieved, error) {
					return testHits(6), nil
				}
				l.OnGenerate = func(ctx context.Context, system string, user string) (string, error) {
					return "grounded answer", nil
				}
			},
			expectedAnswer:  "grounded answer",
			expectedSources: config.MaxAttributedSources,
		},
		{
			name: "Empty_Generation_Becomes_Sentinel",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				l.OnGenerate = func(ctx context.Context, system string, user string) (string, error) {
					return "   \n ", nil
				}
			},
			expectedAnswer:  rag.NoAnswerSentinel,
			expectedSources: 1,
		},
		{
			name: "Fewer_Hits_Than_Attribution_Cap",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				v.OnQuery = func(ctx context.Context, c string, vec []float32, k int) ([]kbModel.Retrieved, error) {
					return testHits(2), nil
				}
			},
			expectedAnswer:  "mocked llm response",
			expectedSources: 2,
		},
		{
			name: "Failure_Embedding",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				e.OnEmbedQuery = func(ctx context.Context, text string) ([]float32, error) {
					return nil, errors.New("api limit")
				}
			},
			expectedErr: "api limit",
		},
		{
			name: "Failure_Vector_Search",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				v.OnQuery = func(ctx context.Context, c string, vec []float32, k int) ([]kbModel.Retrieved, error) {
					return nil, errors.New("db timeout")
				}
			},
			expectedErr: "db timeout",
		},
		{
			name: "Failure_LLM_Generation",
			setupMocks: func(e *MockEmbedder, v *MockVectorDB, l *MockLLM) {
				l.OnGenerate = func(ctx context.Context, system string, user string) (string, error) {
					return "", errors.New("provider down")
				}
			},
			expectedErr: "provider down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEmbed := &MockEmbedder{}
			mVec := &MockVectorDB{}
			mLLM := &MockLLM{}

			tt.setupMocks(mEmbed, mVec, mLLM)

			s := rag.NewService(mVec, mLLM, mEmbed)

			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
			reply, err := s.Answer(ctx, "what is your experience?")

			if tt.expectedErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedErr) {
					t.Fatalf("Expected error containing %q, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Answer failed: %v", err)
			}
			if reply.Answer != tt.expectedAnswer {
				t.Errorf("Answer got %q, want %q", reply.Answer, tt.expectedAnswer)
			}
			if len(reply.Sources) != tt.expectedSources {
				t.Errorf("Sources got %d, want %d", len(reply.Sources), tt.expectedSources)
			}
		})
	}
}

func TestAnswer_UsesRetrievedContext(t *testing.T) {
	var capturedUser string
	var capturedSystem string

	mVec := &MockVectorDB{
		OnQuery: func(ctx context.Context, c string, vec []float32, k int) ([]kbModel.Retrieved, error) {
			if k != config.RetrieveTopK {
				t.Errorf("Query k got %d, want %d", k, config.RetrieveTopK)
			}
			return []kbModel.Retrieved{
				{Text: "first chunk", Source: "profile", Part: 0},
				{Text: "second chunk", Source: "resume", Part: 3},
			}, nil
		},
	}
	mLLM := &MockLLM{
		OnGenerate: func(ctx context.Context, system string, user string) (string, error) {
			capturedSystem = system
			capturedUser = user
			return "ok", nil
		},
	}

	s := rag.NewService(mVec, mLLM, &MockEmbedder{})
	reply, err := s.Answer(context.Background(), "tell me about the resume")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	if capturedSystem != config.SystemInstruction {
		t.Error("Generation must use the fixed system instruction")
	}
	if !strings.Contains(capturedUser, "tell me about the resume") {
		t.Errorf("User prompt must contain the question: %q", capturedUser)
	}
	if !strings.Contains(capturedUser, "Source 1 (profile):\nfirst chunk") {
		t.Errorf("Context block missing labeled first chunk: %q", capturedUser)
	}
	if !strings.Contains(capturedUser, "Source 2 (resume):\nsecond chunk") {
		t.Errorf("Context block missing labeled second chunk: %q", capturedUser)
	}

	// Attribution preserves index order and carries {source, part}.
	if len(reply.Sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(reply.Sources))
	}
	if reply.Sources[0].Source != "profile" || reply.Sources[0].Part != 0 {
		t.Errorf("Source 0 mismatch: %+v", reply.Sources[0])
	}
	if reply.Sources[1].Source != "resume" || reply.Sources[1].Part != 3 {
		t.Errorf("Source 1 mismatch: %+v", reply.Sources[1])
	}
}
