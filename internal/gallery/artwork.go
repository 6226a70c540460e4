package gallery

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes a full 3D asset from a flat image plane.
type Kind string

const (
	// KindModel is a full 3D asset with depth.
	KindModel Kind = "model"

	// KindPlane is a flat image treated as a rectangular display surface.
	// Uploads only ever produce planes; models are "coming soon".
	KindPlane Kind = "plane"
)

// Valid reports whether k is a known artwork kind.
func (k Kind) Valid() bool {
	return k == KindModel || k == KindPlane
}

// Dimensions are the physical display dimensions in meters.
// Depth is only present for model artworks.
type Dimensions struct {
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Depth  *float64 `json:"depth,omitempty"`
}

// Artwork is a persisted gallery piece.
type Artwork struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Artist      string     `json:"artist"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Kind        Kind       `json:"type"`
	Dimensions  Dimensions `json:"dimensions"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewArtwork is the insert payload. ID and CreatedAt are assigned by the
// store at write time and must not be supplied by callers.
type NewArtwork struct {
	Title       string
	Artist      string
	Description string
	ImageURL    string
	Kind        Kind
	Dimensions  Dimensions
}

// Validate checks the structural invariants of an insert payload.
func (n NewArtwork) Validate() error {
	if n.Title == "" {
		return ErrMissingTitle
	}
	if n.Artist == "" {
		return ErrMissingArtist
	}
	if !n.Kind.Valid() {
		return ErrInvalidKind
	}
	if n.Dimensions.Width <= 0 || n.Dimensions.Height <= 0 {
		return ErrInvalidDimensions
	}
	if n.Dimensions.Depth != nil && *n.Dimensions.Depth <= 0 {
		return ErrInvalidDimensions
	}
	// Depth belongs to 3D models only.
	if n.Kind == KindPlane && n.Dimensions.Depth != nil {
		return ErrInvalidDimensions
	}
	return nil
}
