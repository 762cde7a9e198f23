package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/config"
	"github.com/gokatarajesh/trivia-bank/internal/logging"
	"github.com/gokatarajesh/trivia-bank/internal/metrics"
	"github.com/gokatarajesh/trivia-bank/internal/question"
)

const requestIDHeader = "X-Request-ID"

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger. The Redis client is wired through it.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Dependencies lists what /v1/ping checks. Nil entries are skipped.
type Dependencies struct {
	Postgres Pinger
	Redis    Pinger
}

// NewHTTPServer wires the question bank routes plus health, metrics and ping.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, deps Dependencies, questions *question.HTTPHandler, collector *metrics.Collector) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(cfg.CORS, logger, deps, questions, collector),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler builds the routed and wrapped handler. Split out so tests can drive it directly.
func NewHandler(corsCfg config.CORS, logger zerolog.Logger, deps Dependencies, questions *question.HTTPHandler, collector *metrics.Collector) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", collector.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), deps); err != nil {
			logging.FromContext(r.Context(), logger).Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	mux.HandleFunc("/categories", questions.HandleCategories)
	mux.HandleFunc("/categories/{id}/questions", questions.HandleCategoryQuestions)
	mux.HandleFunc("/questions", questions.HandleQuestions)
	mux.HandleFunc("/questions/search", questions.HandleSearch)
	mux.HandleFunc("/questions/{id}", questions.HandleQuestion)
	mux.HandleFunc("/quizzes", questions.HandleQuiz)
	mux.HandleFunc("/", questions.HandleNotFound)

	var handler http.Handler = mux
	handler = requestLogger(logger, collector, mux)(handler)
	handler = requestID(handler)
	handler = cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
	})(handler)
	return handler
}

func pingDependencies(ctx context.Context, deps Dependencies) error {
	if deps.Postgres != nil {
		if err := deps.Postgres.Ping(ctx); err != nil {
			return err
		}
	}
	if deps.Redis != nil {
		if err := deps.Redis.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

type ctxRequestIDKey struct{}

// RequestIDFromContext returns the id assigned by the request id middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestIDKey{}).(string)
	return id
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxRequestIDKey{}, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger attaches a request-scoped logger and records one log line and
// one metric sample per request. Routes are labelled by mux pattern to keep
// metric cardinality bounded.
func requestLogger(logger zerolog.Logger, collector *metrics.Collector, mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With().
				Str("request_id", RequestIDFromContext(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Logger()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(logging.IntoContext(r.Context(), reqLogger)))

			_, route := mux.Handler(r)
			if route == "" {
				route = "unmatched"
			}
			elapsed := time.Since(start)
			collector.ObserveRequest(r.Method, route, rec.status, elapsed)

			event := reqLogger.Info()
			if rec.status >= http.StatusInternalServerError {
				event = reqLogger.Warn()
			}
			event.Int("status", rec.status).Dur("duration", elapsed).Str("route", route).Msg("http request")
		})
	}
}
