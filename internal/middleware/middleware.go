package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"

	"github.com/sunzid02/portfolio-chat-api/internal/adapter/utils"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/handlers"
	"github.com/sunzid02/portfolio-chat-api/internal/metrics"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

var GetHandler = Wrap(handlers.GetHandler)
var ChatHandler = Wrap(handlers.ChatHandler)
var OfflineChatHandler = Wrap(handlers.OfflineChatHandler)
var TranscriptHandler = Wrap(handlers.TranscriptHandler)

// Wrap runs the shared pre-request chain (trace injection, rate
// limiting) and records request metrics around the handler.
func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200}
		log := logger_i.NewLogger("middleware")

		r = injectTrace(r)

		if !allowRequest(r, log) {
			handlers.WriteErrorResponse(rec, http.StatusTooManyRequests, "Rate limit exceeded")
			metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc()
			return
		}

		next(rec, r)
		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc()
	}
}

func injectTrace(r *http.Request) *http.Request {
	trace := r.Header.Get("X-Trace-Id")
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	ctx := context.WithValue(r.Context(), config.TRACE_ID_KEY, trace)
	r.Header.Set("X-Trace-Id", trace)
	return r.WithContext(ctx)
}

func allowRequest(r *http.Request, log *logger_i.Logger) bool {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if !limiterInstance.GetLimiter(ip).Allow() {
		log.Warn("Too many requests", "ip", ip)
		return false
	}
	return true
}
