package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sunzid02/portfolio-chat-api/internal/api"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/chatModel"
	"github.com/sunzid02/portfolio-chat-api/internal/metrics"
	"github.com/sunzid02/portfolio-chat-api/internal/rag"
	"github.com/sunzid02/portfolio-chat-api/internal/rules"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

var (
	handlerInstance *chatHandler //private singleton
	logOnce         sync.Once
	logCH           *logger_i.Logger
)

type chatHandler struct {
	rag        rag.Service
	rules      *rules.Engine
	transcript chatModel.TranscriptStore
}

// InitChatHandler wires the two responders and the transcript log
// into the package-level handler functions.
func InitChatHandler(ragService rag.Service, engine *rules.Engine, transcript chatModel.TranscriptStore) {
	logOnce.Do(func() {
		logCH = logger_i.NewLogger("ChatHandler")
	})
	handlerInstance = &chatHandler{
		rag:        ragService,
		rules:      engine,
		transcript: transcript,
	}
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ChatHandler is the online path: one message in, one grounded reply
// out. Bad input never reaches the pipeline; dependency failures come
// back as a generic server error, never a crash.
func ChatHandler(w http.ResponseWriter, r *http.Request) {
	message, ok := readMessage(w, r)
	if !ok {
		return
	}

	start := time.Now()
	reply, err := handlerInstance.rag.Answer(r.Context(), message)
	metrics.CaptureRequestMetrics(string(chatModel.ModeOnline), time.Since(start))
	if err != nil {
		logCH.Error("online responder failed", "traceId", r.Context().Value(config.TRACE_ID_KEY), "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	handlerInstance.recordTranscript(message, reply.Answer, chatModel.ModeOnline)
	writeJsonResponse(w, http.StatusOK, reply)
}

// OfflineChatHandler answers from structured profile data only; it has
// no external dependency and cannot fail on one.
func OfflineChatHandler(w http.ResponseWriter, r *http.Request) {
	message, ok := readMessage(w, r)
	if !ok {
		return
	}

	start := time.Now()
	reply := handlerInstance.rules.Answer(message)
	metrics.CaptureRequestMetrics(string(chatModel.ModeOffline), time.Since(start))

	handlerInstance.recordTranscript(message, reply.Answer, chatModel.ModeOffline)
	writeJsonResponse(w, http.StatusOK, reply)
}

func TranscriptHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := handlerInstance.transcript.Recent(r.Context(), config.TranscriptRecentCount)
	if err != nil {
		logCH.Error("transcript read failed", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	res := api.TranscriptResponse{Entries: make([]api.TranscriptEntry, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, api.TranscriptEntry{
			Question: e.Question,
			Answer:   e.Answer,
			Mode:     string(e.Mode),
			At:       e.At.Format(time.RFC3339),
		})
	}
	writeJsonResponse(w, http.StatusOK, res)
}

func readMessage(w http.ResponseWriter, r *http.Request) (string, bool) {
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logCH.Error("Couldn't close the request body reader:", "error", err)
		}
	}(r.Body)

	var requestData api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil && err != io.EOF {
		logCH.Warn("Bad chat request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Missing message")
		return "", false
	}

	message := strings.TrimSpace(requestData.Message)
	if message == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Missing message")
		return "", false
	}
	return message, true
}

// recordTranscript is fire-and-forget; a failing transcript write must
// never affect the reply already on the wire.
func (h *chatHandler) recordTranscript(question string, answer string, mode chatModel.ResponderMode) {
	entry := chatModel.TranscriptEntry{
		Question: question,
		Answer:   answer,
		Mode:     mode,
		At:       time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.transcript.Record(ctx, entry); err != nil {
			logCH.Error("Failed to record transcript entry", "error", err)
		}
	}()
}
