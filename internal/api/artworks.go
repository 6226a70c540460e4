package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/galeria0/galeria/internal/gallery"
)

// GalleryStore is the slice of the artwork store the handlers consume.
// Writes go through the upload orchestrator, so no insert method here.
type GalleryStore interface {
	List(ctx context.Context) ([]gallery.Artwork, error)
	Get(ctx context.Context, id uuid.UUID) (gallery.Artwork, error)
	SeedIfEmpty(ctx context.Context, initial []gallery.NewArtwork) (bool, error)
}

// ListingCache caches the full gallery listing between writes.
type ListingCache interface {
	Get() ([]gallery.Artwork, bool)
	Put(artworks []gallery.Artwork)
	Invalidate()
}

type artworkHandler struct {
	store  GalleryStore
	cache  ListingCache
	seed   bool
	logger *slog.Logger
}

// list returns every artwork, newest first. An empty gallery is seeded
// with the starter collection on first read, then the listing is cached
// until the next write.
func (h *artworkHandler) list(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		if artworks, ok := h.cache.Get(); ok {
			writeJSON(w, http.StatusOK, artworks)
			return
		}
	}

	if h.seed {
		seeded, err := h.store.SeedIfEmpty(r.Context(), gallery.DefaultSeed())
		if err != nil {
			h.logger.Error("seeding gallery", "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "failed to load artworks")
			return
		}
		if seeded {
			h.logger.Info("seeded empty gallery with starter collection")
		}
	}

	artworks, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("listing artworks", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load artworks")
		return
	}

	if h.cache != nil {
		h.cache.Put(artworks)
	}
	writeJSON(w, http.StatusOK, artworks)
}

func (h *artworkHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "artwork id must be a UUID")
		return
	}

	artwork, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, gallery.ErrArtworkNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "artwork not found")
			return
		}
		h.logger.Error("fetching artwork", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load artwork")
		return
	}

	writeJSON(w, http.StatusOK, artwork)
}
