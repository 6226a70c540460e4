package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ServerConfig contains configuration for creating the API server.
type ServerConfig struct {
	Logger      *slog.Logger
	Store       GalleryStore  // Required
	Cache       ListingCache  // Optional: nil disables listing cache
	Assistant   Answerer      // Required
	Uploader    Uploader      // Required
	Pool        *pgxpool.Pool // Optional: nil disables pool stats in /ready
	CORSOrigins []string      // Allowed origins for CORS
	SeedGallery bool          // Seed the starter collection on first listing
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a new API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("gallery store is required")
	}
	if cfg.Assistant == nil {
		return nil, errors.New("assistant service is required")
	}
	if cfg.Uploader == nil {
		return nil, errors.New("uploader is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ah := &artworkHandler{
		store:  cfg.Store,
		cache:  cfg.Cache,
		seed:   cfg.SeedGallery,
		logger: logger,
	}
	qh := &assistantHandler{store: cfg.Store, svc: cfg.Assistant, logger: logger}
	uh := &uploadHandler{uploader: cfg.Uploader, logger: logger}

	mux := http.NewServeMux()

	// Artworks: reads plus the upload pipeline. New pieces only ever
	// enter through the orchestrator, never as raw inserts.
	mux.HandleFunc("GET /api/v1/artworks", ah.list)
	mux.HandleFunc("POST /api/v1/artworks", uh.create)
	mux.HandleFunc("GET /api/v1/artworks/{id}", ah.get)

	// Assistant
	mux.HandleFunc("POST /api/v1/artworks/{id}/query", qh.query)
	mux.HandleFunc("POST /api/v1/artworks/{id}/contextualize", qh.contextualize)

	// Build middleware stack (outermost first):
	//   Recovery → RequestID → Logging → CORS → Routes
	// RequestID must be before Logging so request_id is available in log attributes.
	// CORS must be before routing so preflight OPTIONS gets proper CORS headers.
	var handler http.Handler = mux
	handler = corsMiddleware(cfg.CORSOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setSecurityHeaders(w)
		handler.ServeHTTP(w, r)
	})

	// Top-level mux separates health probes from the middleware stack
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /health", health)
	topMux.Handle("GET /ready", readiness(cfg.Pool))
	topMux.Handle("/", final)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}
