package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/galeria0/galeria/internal/gallery"
)

// Answerer is the slice of the query service the handlers consume.
// Both methods always return a displayable string; failures surface as
// fixed apology text, never as transport errors.
type Answerer interface {
	AnswerQuery(ctx context.Context, description, userQuery string) string
	Contextualize(ctx context.Context, description, userQuery string) string
}

type assistantHandler struct {
	store  GalleryStore
	svc    Answerer
	logger *slog.Logger
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Answer string `json:"answer"`
}

type contextualizeResponse struct {
	ModifiedDisplay string `json:"modifiedDisplay"`
}

// query answers a visitor question about the artwork in the path.
func (h *assistantHandler) query(w http.ResponseWriter, r *http.Request) {
	artwork, ok := h.loadArtwork(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeQuery(w, r)
	if !ok {
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "missing_query", "query must not be empty")
		return
	}

	answer := h.svc.AnswerQuery(r.Context(), artwork.Description, req.Query)
	writeJSON(w, http.StatusOK, queryResponse{Answer: answer})
}

// contextualize rewrites the artwork's display text around the visitor's
// question. An empty query is allowed; the service answers it with a
// prompt for input instead of calling the model.
func (h *assistantHandler) contextualize(w http.ResponseWriter, r *http.Request) {
	artwork, ok := h.loadArtwork(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeQuery(w, r)
	if !ok {
		return
	}

	display := h.svc.Contextualize(r.Context(), artwork.Description, req.Query)
	writeJSON(w, http.StatusOK, contextualizeResponse{ModifiedDisplay: display})
}

func (h *assistantHandler) loadArtwork(w http.ResponseWriter, r *http.Request) (gallery.Artwork, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "artwork id must be a UUID")
		return gallery.Artwork{}, false
	}

	artwork, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, gallery.ErrArtworkNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "artwork not found")
			return gallery.Artwork{}, false
		}
		h.logger.Error("fetching artwork for assistant", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load artwork")
		return gallery.Artwork{}, false
	}

	return artwork, true
}

func (h *assistantHandler) decodeQuery(w http.ResponseWriter, r *http.Request) (queryRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req queryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be JSON with a query field")
		return queryRequest{}, false
	}
	return req, true
}
