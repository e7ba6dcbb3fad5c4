// Package api serves the tutor over a small JSON HTTP API.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/evaluation"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/pacing"
	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/store"
	"github.com/abhisek/ailearn/internal/tutor"
)

const maxBodySize = 1 << 20

// AppDeps are the services behind the handlers. Progress is required.
type AppDeps struct {
	Progress  *progress.Service
	Catalog   *lessons.Catalog
	Tutor     *tutor.Tutor
	Evaluator *evaluation.Evaluator
	Pacer     *pacing.Pacer
	Events    store.EventRepo // optional
	Logger    *zap.Logger
}

func (d AppDeps) withDefaults() AppDeps {
	if d.Catalog == nil {
		d.Catalog = lessons.Default()
	}
	if d.Tutor == nil {
		d.Tutor = tutor.New(nil)
	}
	if d.Evaluator == nil {
		d.Evaluator = evaluation.Default()
	}
	if d.Pacer == nil {
		d.Pacer = pacing.Instant()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

// NewAppHandler routes every endpoint.
func NewAppHandler(deps AppDeps) http.Handler {
	deps = deps.withDefaults()

	r := chi.NewRouter()
	r.Use(requestLogger(deps.Logger))

	r.Get("/health", handleHealth())
	r.Get("/profile", handleGetProfile(deps))
	r.Patch("/profile", handleUpdateProfile(deps))
	r.Get("/state", handleGetState(deps))

	r.Get("/lessons", handleListLessons(deps))
	r.Get("/lessons/recommended", handleRecommended(deps))
	r.Post("/lessons/generate", handleGenerate(deps))

	r.Post("/evaluate", handleEvaluate(deps))
	r.Post("/feedback", handleFeedback(deps))
	r.Post("/mastery", handleMastery(deps))
	r.Post("/counters/{kind}", handleCounter(deps))
	r.Post("/reset", handleReset(deps))

	return r
}

// requestLogger tags each request with an id and logs its outcome.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", id)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			logger.Debug("request",
				zap.String("id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
		return false
	}
	return true
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
