package gallery

import "errors"

// Sentinel errors for store and validation outcomes.
// These are part of the package's public API and should be checked with errors.Is().
var (
	// ErrArtworkNotFound indicates the requested artwork does not exist.
	// This is a normal absence, not a storage failure; API handlers map it
	// to a 404 rather than a generic error response.
	ErrArtworkNotFound = errors.New("artwork not found")

	// ErrMissingTitle indicates an insert payload without a title.
	ErrMissingTitle = errors.New("artwork title is required")

	// ErrMissingArtist indicates an insert payload without an artist.
	ErrMissingArtist = errors.New("artwork artist is required")

	// ErrInvalidKind indicates an unknown artwork kind.
	ErrInvalidKind = errors.New("invalid artwork kind")

	// ErrInvalidDimensions indicates non-positive dimensions, or a depth
	// supplied for a plane artwork.
	ErrInvalidDimensions = errors.New("invalid artwork dimensions")
)
