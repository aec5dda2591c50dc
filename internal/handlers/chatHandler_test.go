package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sunzid02/portfolio-chat-api/internal/api"
	"github.com/sunzid02/portfolio-chat-api/internal/data/store"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/chatModel"
	"github.com/sunzid02/portfolio-chat-api/internal/handlers"
	"github.com/sunzid02/portfolio-chat-api/internal/profile"
	"github.com/sunzid02/portfolio-chat-api/internal/rules"
)

type mockRagService struct {
	onAnswer func(ctx context.Context, question string) (api.ChatReply, error)
	calls    int
}

func (m *mockRagService) Answer(ctx context.Context, question string) (api.ChatReply, error) {
	m.calls++
	if m.onAnswer != nil {
		return m.onAnswer(ctx, question)
	}
	return api.ChatReply{Answer: "grounded answer"}, nil
}

func setupHandlers(t *testing.T, svc *mockRagService) {
	t.Helper()
	p := &profile.Profile{Hero: profile.Hero{Headline: "Dev", Subline: "builds things", Email: "me@example.com"}}
	engine := rules.NewEngine(profile.Static(p))
	handlers.InitChatHandler(svc, engine, store.InitInMemoryTranscriptStore())
}

func postChat(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var e api.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return e
}

func TestChatHandler_MissingMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"empty message", `{"message":""}`},
		{"whitespace message", `{"message":"   "}`},
		{"malformed json", `{"message":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRagService{}
			setupHandlers(t, svc)

			rec := postChat(handlers.ChatHandler, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("Status = %d; want 400", rec.Code)
			}
			if e := decodeError(t, rec); e.Error != "Missing message" {
				t.Errorf("Error = %q; want Missing message", e.Error)
			}
			if svc.calls != 0 {
				t.Errorf("Pipeline was invoked %d times on bad input", svc.calls)
			}
		})
	}
}

func TestChatHandler_Success(t *testing.T) {
	svc := &mockRagService{
		onAnswer: func(ctx context.Context, question string) (api.ChatReply, error) {
			if question != "what is your stack?" {
				t.Errorf("Question = %q", question)
			}
			return api.ChatReply{
				Answer:  "Laravel and React",
				Sources: []api.SourceRef{{Source: "profile.yaml", Part: 0}},
			}, nil
		},
	}
	setupHandlers(t, svc)

	rec := postChat(handlers.ChatHandler, `{"message":"what is your stack?"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d; want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var reply api.ChatReply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	if reply.Answer != "Laravel and React" {
		t.Errorf("Answer = %q", reply.Answer)
	}
	if len(reply.Sources) != 1 || reply.Sources[0].Source != "profile.yaml" {
		t.Errorf("Sources = %+v", reply.Sources)
	}
}

func TestChatHandler_DependencyFailure(t *testing.T) {
	svc := &mockRagService{
		onAnswer: func(ctx context.Context, question string) (api.ChatReply, error) {
			return api.ChatReply{}, errors.New("vector db down")
		},
	}
	setupHandlers(t, svc)

	rec := postChat(handlers.ChatHandler, `{"message":"hello"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d; want 500", rec.Code)
	}
	if e := decodeError(t, rec); e.Error != "Server error" {
		t.Errorf("Error = %q; want Server error", e.Error)
	}
}

func TestOfflineChatHandler(t *testing.T) {
	svc := &mockRagService{}
	setupHandlers(t, svc)

	rec := postChat(handlers.OfflineChatHandler, `{"message":"how do I contact you?"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d; want 200", rec.Code)
	}
	var reply api.ChatReply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	if reply.Answer != "Email: me@example.com" {
		t.Errorf("Answer = %q", reply.Answer)
	}
	if svc.calls != 0 {
		t.Error("Offline path must not touch the online pipeline")
	}
}

func TestOfflineChatHandler_MissingMessage(t *testing.T) {
	setupHandlers(t, &mockRagService{})

	rec := postChat(handlers.OfflineChatHandler, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d; want 400", rec.Code)
	}
}

func TestTranscriptHandler(t *testing.T) {
	p := &profile.Profile{Hero: profile.Hero{Headline: "Dev"}}
	engine := rules.NewEngine(profile.Static(p))
	ts := store.InitInMemoryTranscriptStore()
	if err := ts.Record(context.Background(), chatModel.TranscriptEntry{
		Question: "hi", Answer: "hello", Mode: chatModel.ModeOffline, At: time.Now(),
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	handlers.InitChatHandler(&mockRagService{}, engine, ts)

	req := httptest.NewRequest(http.MethodGet, "/transcript", nil)
	rec := httptest.NewRecorder()
	handlers.TranscriptHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d; want 200", rec.Code)
	}
	var res api.TranscriptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding transcript: %v", err)
	}
	if len(res.Entries) != 1 || res.Entries[0].Question != "hi" || res.Entries[0].Mode != "offline" {
		t.Errorf("Entries = %+v", res.Entries)
	}
}

func TestGetHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handlers.GetHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Status = %d; want 200", rec.Code)
	}
}
