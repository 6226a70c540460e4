package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/galeria0/galeria/internal/upload"
)

// Uploader runs the image-to-artwork pipeline.
type Uploader interface {
	Upload(ctx context.Context, req upload.Request) upload.Result
}

type uploadHandler struct {
	uploader Uploader
	logger   *slog.Logger
}

// create accepts a visitor image upload and returns the upload result
// envelope. Pipeline failures are reported inside the envelope with
// status 200; only a malformed request is a transport-level error.
func (h *uploadHandler) create(w http.ResponseWriter, r *http.Request) {
	// Data URIs inflate images by a third, so allow well above the
	// expected raw size.
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024*1024)

	var req upload.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a valid upload request")
		return
	}

	result := h.uploader.Upload(r.Context(), req)
	writeJSON(w, http.StatusOK, result)
}
