package upload

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/galeria0/galeria/internal/assistant"
	"github.com/galeria0/galeria/internal/gallery"
)

type mockGenerator struct {
	out       assistant.ImageToPlaneOutput
	err       error
	calls     int
	lastInput assistant.ImageToPlaneInput
}

func (m *mockGenerator) ImageToPlane(_ context.Context, in assistant.ImageToPlaneInput) (assistant.ImageToPlaneOutput, error) {
	m.calls++
	m.lastInput = in
	return m.out, m.err
}

type mockStore struct {
	inserted []gallery.NewArtwork
	err      error
}

func (m *mockStore) Insert(_ context.Context, payload gallery.NewArtwork) (gallery.Artwork, error) {
	m.inserted = append(m.inserted, payload)
	if m.err != nil {
		return gallery.Artwork{}, m.err
	}
	return gallery.Artwork{
		ID:          uuid.New(),
		Title:       payload.Title,
		Artist:      payload.Artist,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		Kind:        payload.Kind,
		Dimensions:  payload.Dimensions,
	}, nil
}

type mockInvalidator struct {
	calls int
}

func (m *mockInvalidator) Invalidate() { m.calls++ }

func validRequest() Request {
	return Request{
		Title:        "Neon Alley",
		Artist:       "V. Okada",
		Description:  "a photo of a neon alley at night",
		Width:        1.2,
		Height:       0.8,
		ImageDataURI: "data:image/png;base64,aGVsbG8=",
	}
}

func generatedOutput() assistant.ImageToPlaneOutput {
	return assistant.ImageToPlaneOutput{
		Title:       "Neon Alley",
		Artist:      "V. Okada",
		Kind:        "plane",
		ImageURL:    "data:image/png;base64,aGVsbG8=",
		Description: "A luminous study of a rain-slicked alley bathed in neon.",
	}
}

func TestUpload(t *testing.T) {
	gen := &mockGenerator{out: generatedOutput()}
	store := &mockStore{}
	cache := &mockInvalidator{}
	o := NewOrchestrator(gen, store, cache, slog.New(slog.DiscardHandler))

	result := o.Upload(context.Background(), validRequest())

	if !result.Success {
		t.Fatalf("Upload() failed: %q", result.Error)
	}
	if result.Artwork == nil {
		t.Fatal("Upload() succeeded without an artwork")
	}
	if result.Artwork.Kind != gallery.KindPlane {
		t.Errorf("Upload() kind = %q, want plane", result.Artwork.Kind)
	}
	if result.Artwork.Dimensions.Depth != nil {
		t.Error("Upload() produced a plane with depth")
	}
	if result.Artwork.Dimensions.Width != 1.2 || result.Artwork.Dimensions.Height != 0.8 {
		t.Errorf("Upload() dimensions = %+v, want the requested ones", result.Artwork.Dimensions)
	}
	if cache.calls != 1 {
		t.Errorf("Upload() invalidated the cache %d times, want 1", cache.calls)
	}
}

func TestUploadRejectsBadRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing title", mutate: func(r *Request) { r.Title = "  " }},
		{name: "missing artist", mutate: func(r *Request) { r.Artist = "" }},
		{name: "zero width", mutate: func(r *Request) { r.Width = 0 }},
		{name: "negative height", mutate: func(r *Request) { r.Height = -1 }},
		{name: "missing image", mutate: func(r *Request) { r.ImageDataURI = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{out: generatedOutput()}
			store := &mockStore{}
			cache := &mockInvalidator{}
			o := NewOrchestrator(gen, store, cache, slog.New(slog.DiscardHandler))

			req := validRequest()
			tt.mutate(&req)
			result := o.Upload(context.Background(), req)

			if result.Success {
				t.Fatal("Upload() accepted an invalid request")
			}
			if result.Error != UploadErrorMessage {
				t.Errorf("Upload() error = %q, want the fixed message", result.Error)
			}
			if gen.calls != 0 {
				t.Errorf("Upload() made %d generation calls for an invalid request, want 0", gen.calls)
			}
			if len(store.inserted) != 0 {
				t.Error("Upload() persisted an invalid request")
			}
		})
	}
}

func TestUploadGenerationFailure(t *testing.T) {
	gen := &mockGenerator{err: assistant.ErrGeneration}
	store := &mockStore{}
	cache := &mockInvalidator{}
	o := NewOrchestrator(gen, store, cache, slog.New(slog.DiscardHandler))

	result := o.Upload(context.Background(), validRequest())

	if result.Success {
		t.Fatal("Upload() succeeded despite a generation failure")
	}
	if result.Error != UploadErrorMessage {
		t.Errorf("Upload() error = %q, want the fixed message", result.Error)
	}
	if len(store.inserted) != 0 {
		t.Error("Upload() persisted after a generation failure")
	}
	if cache.calls != 0 {
		t.Error("Upload() invalidated the cache after a failure")
	}
}

func TestUploadRejectsMalformedGeneration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*assistant.ImageToPlaneOutput)
	}{
		{name: "wrong kind", mutate: func(o *assistant.ImageToPlaneOutput) { o.Kind = "model" }},
		{name: "empty kind", mutate: func(o *assistant.ImageToPlaneOutput) { o.Kind = "" }},
		{name: "missing title", mutate: func(o *assistant.ImageToPlaneOutput) { o.Title = "" }},
		{name: "missing artist", mutate: func(o *assistant.ImageToPlaneOutput) { o.Artist = "" }},
		{name: "missing description", mutate: func(o *assistant.ImageToPlaneOutput) { o.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := generatedOutput()
			tt.mutate(&out)
			gen := &mockGenerator{out: out}
			store := &mockStore{}
			cache := &mockInvalidator{}
			o := NewOrchestrator(gen, store, cache, slog.New(slog.DiscardHandler))

			result := o.Upload(context.Background(), validRequest())

			if result.Success {
				t.Fatal("Upload() accepted a malformed generation")
			}
			if result.Error != UploadErrorMessage {
				t.Errorf("Upload() error = %q, want the fixed message", result.Error)
			}
			if len(store.inserted) != 0 {
				t.Errorf("Upload() called Insert %d times for a malformed generation, want 0", len(store.inserted))
			}
			if cache.calls != 0 {
				t.Error("Upload() invalidated the cache for a malformed generation")
			}
		})
	}
}

func TestUploadFallsBackToRequestImage(t *testing.T) {
	out := generatedOutput()
	out.ImageURL = ""
	gen := &mockGenerator{out: out}
	store := &mockStore{}
	o := NewOrchestrator(gen, store, nil, slog.New(slog.DiscardHandler))

	result := o.Upload(context.Background(), validRequest())

	if !result.Success {
		t.Fatalf("Upload() failed: %q", result.Error)
	}
	if result.Artwork.ImageURL != validRequest().ImageDataURI {
		t.Errorf("Upload() imageUrl = %q, want the uploaded data URI", result.Artwork.ImageURL)
	}
}

func TestUploadStoreFailure(t *testing.T) {
	gen := &mockGenerator{out: generatedOutput()}
	store := &mockStore{err: errors.New("insert failed")}
	cache := &mockInvalidator{}
	o := NewOrchestrator(gen, store, cache, slog.New(slog.DiscardHandler))

	result := o.Upload(context.Background(), validRequest())

	if result.Success {
		t.Fatal("Upload() succeeded despite a store failure")
	}
	if result.Error != UploadErrorMessage {
		t.Errorf("Upload() error = %q, want the fixed message", result.Error)
	}
	if cache.calls != 0 {
		t.Error("Upload() invalidated the cache after a store failure")
	}
}
