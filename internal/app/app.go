// Package app provides application initialization and dependency wiring.
//
// App is the container that holds every long-lived component: the database
// pool, Genkit runtime, artwork store, listing cache, assistant services,
// and the upload orchestrator.
package app

import (
	"log/slog"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galeria0/galeria/internal/assistant"
	"github.com/galeria0/galeria/internal/config"
	"github.com/galeria0/galeria/internal/gallery"
	"github.com/galeria0/galeria/internal/upload"
)

// App is the core application container.
type App struct {
	Config *config.Config

	Genkit   *genkit.Genkit
	DBPool   *pgxpool.Pool
	Store    *gallery.Store
	Cache    *gallery.ListingCache
	Client   *assistant.Client
	Query    *assistant.QueryService
	Uploader *upload.Orchestrator

	dbCleanup func()
}

// CacheTTL returns the configured listing cache lifetime.
func (a *App) CacheTTL() time.Duration {
	return time.Duration(a.Config.CacheTTLSeconds) * time.Second
}

// Close gracefully shuts down all resources.
func (a *App) Close() error {
	slog.Info("shutting down application")

	if a.dbCleanup != nil {
		a.dbCleanup()
		slog.Info("database pool closed")
	}

	return nil
}
