// Package upload orchestrates turning a visitor-supplied image into a
// persisted gallery artwork. The pipeline is generate, validate, persist,
// invalidate: the model shapes the piece, the orchestrator decides what is
// actually stored.
package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/galeria0/galeria/internal/assistant"
	"github.com/galeria0/galeria/internal/gallery"
)

// UploadErrorMessage is shown to the visitor whenever an upload fails,
// regardless of cause. The real cause goes to the log.
const UploadErrorMessage = "I'm sorry, I encountered an error while processing your image. Please try again."

// ErrInvalidGeneration marks a model response that failed shape validation.
var ErrInvalidGeneration = errors.New("invalid generation result")

// ErrMissingImage indicates an upload request without image data.
var ErrMissingImage = errors.New("missing image data")

// Generator produces a plane artwork candidate from an uploaded image.
type Generator interface {
	ImageToPlane(ctx context.Context, in assistant.ImageToPlaneInput) (assistant.ImageToPlaneOutput, error)
}

// Store persists new artworks.
type Store interface {
	Insert(ctx context.Context, payload gallery.NewArtwork) (gallery.Artwork, error)
}

// Invalidator drops cached gallery listings after a write.
type Invalidator interface {
	Invalidate()
}

// Request carries the visitor's upload form.
type Request struct {
	Title        string  `json:"title"`
	Artist       string  `json:"artist"`
	Description  string  `json:"description"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	ImageDataURI string  `json:"imageDataUri"`
}

// Result is the envelope returned to the client. Exactly one of Artwork
// and Error is set, keyed by Success.
type Result struct {
	Success bool             `json:"success"`
	Artwork *gallery.Artwork `json:"artwork,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Orchestrator runs the upload pipeline end to end.
type Orchestrator struct {
	gen    Generator
	store  Store
	cache  Invalidator
	logger *slog.Logger
}

// NewOrchestrator creates an upload orchestrator. cache may be nil when
// listing caching is disabled.
func NewOrchestrator(gen Generator, store Store, cache Invalidator, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{gen: gen, store: store, cache: cache, logger: logger}
}

// Upload processes a visitor image upload. On any failure the result
// carries Success=false and the fixed visitor-facing message; nothing is
// persisted and the cache is left untouched.
func (o *Orchestrator) Upload(ctx context.Context, req Request) Result {
	if err := validateRequest(req); err != nil {
		o.logger.Warn("rejecting upload request", "error", err)
		return failure()
	}

	out, err := o.gen.ImageToPlane(ctx, assistant.ImageToPlaneInput{
		Title:       req.Title,
		Artist:      req.Artist,
		Description: req.Description,
		Dimensions: assistant.PlaneDimensions{
			Width:  req.Width,
			Height: req.Height,
		},
		ImageDataURI: req.ImageDataURI,
	})
	if err != nil {
		o.logger.Error("generating plane artwork", "title", req.Title, "error", err)
		return failure()
	}

	payload, err := buildPayload(req, out)
	if err != nil {
		o.logger.Error("validating generated artwork", "title", req.Title, "error", err)
		return failure()
	}

	artwork, err := o.store.Insert(ctx, payload)
	if err != nil {
		o.logger.Error("persisting uploaded artwork", "title", req.Title, "error", err)
		return failure()
	}

	if o.cache != nil {
		o.cache.Invalidate()
	}

	o.logger.Info("artwork uploaded", "id", artwork.ID, "title", artwork.Title)
	return Result{Success: true, Artwork: &artwork}
}

func validateRequest(req Request) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return gallery.ErrMissingTitle
	case strings.TrimSpace(req.Artist) == "":
		return gallery.ErrMissingArtist
	case req.Width <= 0 || req.Height <= 0:
		return gallery.ErrInvalidDimensions
	case req.ImageDataURI == "":
		return ErrMissingImage
	}
	return nil
}

// buildPayload converts the model output into an insert payload. The kind
// is always pinned to plane and dimensions always come from the request;
// the model only contributes descriptive text. Any id the model invents
// has no field to land in and is discarded.
func buildPayload(req Request, out assistant.ImageToPlaneOutput) (gallery.NewArtwork, error) {
	if gallery.Kind(out.Kind) != gallery.KindPlane {
		return gallery.NewArtwork{}, fmt.Errorf("%w: type %q", ErrInvalidGeneration, out.Kind)
	}
	if out.Title == "" || out.Artist == "" || out.Description == "" {
		return gallery.NewArtwork{}, fmt.Errorf("%w: empty title, artist, or description", ErrInvalidGeneration)
	}

	imageURL := out.ImageURL
	if imageURL == "" {
		imageURL = req.ImageDataURI
	}

	return gallery.NewArtwork{
		Title:       out.Title,
		Artist:      out.Artist,
		Description: out.Description,
		ImageURL:    imageURL,
		Kind:        gallery.KindPlane,
		Dimensions: gallery.Dimensions{
			Width:  req.Width,
			Height: req.Height,
		},
	}, nil
}

func failure() Result {
	return Result{Success: false, Error: UploadErrorMessage}
}
