package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/galeria0/galeria/internal/gallery"
)

func TestQueryArtwork(t *testing.T) {
	id := uuid.New()
	store := &mockGalleryStore{artworks: []gallery.Artwork{{ID: id, Description: "A bronze sculpture."}}}
	svc := &mockAnswerer{answer: "It was cast in bronze."}
	srv := newTestServer(t, ServerConfig{Store: store, Assistant: svc})

	body := `{"query":"What is it made of?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/artworks/"+id.String()+"/query", strings.NewReader(body))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST query = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got queryResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decoding answer: %v", err)
	}
	if got.Answer != "It was cast in bronze." {
		t.Errorf("answer = %q", got.Answer)
	}
}

func TestQueryArtworkEmptyQuery(t *testing.T) {
	id := uuid.New()
	store := &mockGalleryStore{artworks: []gallery.Artwork{{ID: id}}}
	srv := newTestServer(t, ServerConfig{Store: store})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/artworks/"+id.String()+"/query", strings.NewReader(`{"query":""}`))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST empty query = %d, want 400", rec.Code)
	}
}

func TestQueryArtworkNotFound(t *testing.T) {
	srv := newTestServer(t, ServerConfig{Store: &mockGalleryStore{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/artworks/"+uuid.New().String()+"/query", strings.NewReader(`{"query":"hello"}`))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("POST query for missing artwork = %d, want 404", rec.Code)
	}
}

func TestContextualizeArtwork(t *testing.T) {
	id := uuid.New()
	store := &mockGalleryStore{artworks: []gallery.Artwork{{ID: id, Description: "A painting."}}}
	svc := &mockAnswerer{display: "The highlighted brushwork shimmers."}
	srv := newTestServer(t, ServerConfig{Store: store, Assistant: svc})

	body := `{"query":"show me the brushwork"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/artworks/"+id.String()+"/contextualize", strings.NewReader(body))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST contextualize = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got contextualizeResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decoding display: %v", err)
	}
	if got.ModifiedDisplay != "The highlighted brushwork shimmers." {
		t.Errorf("modifiedDisplay = %q", got.ModifiedDisplay)
	}
}

func TestContextualizeArtworkAllowsEmptyQuery(t *testing.T) {
	id := uuid.New()
	store := &mockGalleryStore{artworks: []gallery.Artwork{{ID: id}}}
	svc := &mockAnswerer{display: "Please ask a question first to get a contextual highlight."}
	srv := newTestServer(t, ServerConfig{Store: store, Assistant: svc})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/artworks/"+id.String()+"/contextualize", strings.NewReader(`{"query":""}`))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST contextualize with empty query = %d, want 200", rec.Code)
	}
}
