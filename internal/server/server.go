// Package server implements the gateway's HTTP surface.
//
// It exposes the synthesis endpoint, a voices listing passthrough, the
// embedded demo page, and the Swagger UI. Each request is handled
// independently; the server keeps no state across requests beyond the
// shared synthesizer.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/harshkhalkar/aws-polly-tts/docs"
	"github.com/harshkhalkar/aws-polly-tts/internal/tts"
	"github.com/harshkhalkar/aws-polly-tts/web"
)

// Server is the gateway HTTP server.
type Server struct {
	port   int
	synth  tts.Synthesizer
	server *http.Server
}

// New creates a gateway server on the given port backed by the synthesizer.
func New(port int, synth tts.Synthesizer) *Server {
	return &Server{port: port, synth: synth}
}

// Handler builds the full route table. Exposed so tests can drive the
// handlers without a listening socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /synthesize", s.handleSynthesize)
	mux.HandleFunc("GET /voices", s.handleVoices)

	// Swagger UI — serves the committed OpenAPI doc.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Demo page and its assets, embedded at build time.
	mux.Handle("GET /", http.FileServerFS(web.Assets))

	return s.withRequestLog(mux)
}

// ListenAndServe starts the HTTP server and blocks until the context is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("gateway listening", "port", s.port)

	go func() {
		<-ctx.Done()
		slog.Info("gateway shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Server) Close() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// withRequestLog tags every request with an ID and logs its outcome.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		slog.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
