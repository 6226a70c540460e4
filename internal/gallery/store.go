package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx operations the store needs.
// Both *pgxpool.Pool and pgx.Tx satisfy it; tests supply mocks.
// Following Go best practices: interfaces are defined by the consumer.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	listArtworksSQL = `SELECT id, title, artist, description, image_url, kind, width, height, depth, created_at
FROM artworks
ORDER BY created_at DESC, id DESC`

	getArtworkSQL = `SELECT id, title, artist, description, image_url, kind, width, height, depth, created_at
FROM artworks
WHERE id = $1`

	insertArtworkSQL = `INSERT INTO artworks (title, artist, description, image_url, kind, width, height, depth)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at`

	seedArtworkSQL = `INSERT INTO artworks (title, artist, description, image_url, kind, width, height, depth)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	countArtworksSQL = `SELECT count(*) FROM artworks`
)

// Store manages artwork persistence with a PostgreSQL backend.
//
// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	db     DBTX
	pool   *pgxpool.Pool // for transactional batch seeding; nil in unit tests
	logger *slog.Logger
}

// NewStore creates a new Store.
//
// pool may be nil (tests with a mock DBTX); SeedIfEmpty then runs its batch
// without a surrounding transaction.
func NewStore(db DBTX, pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, pool: pool, logger: logger}
}

// List returns all artworks ordered by creation time, newest first.
// An empty gallery yields an empty slice, not an error.
func (s *Store) List(ctx context.Context) ([]Artwork, error) {
	rows, err := s.db.Query(ctx, listArtworksSQL)
	if err != nil {
		return nil, fmt.Errorf("listing artworks: %w", err)
	}
	defer rows.Close()

	artworks := []Artwork{}
	for rows.Next() {
		art, err := scanArtwork(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning artwork row: %w", err)
		}
		artworks = append(artworks, art)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artwork rows: %w", err)
	}

	s.logger.Debug("listed artworks", "count", len(artworks))
	return artworks, nil
}

// Get retrieves a single artwork by id.
// A missing id yields ErrArtworkNotFound, which callers must treat as a
// normal absence rather than a storage failure.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Artwork, error) {
	row := s.db.QueryRow(ctx, getArtworkSQL, id)
	art, err := scanArtwork(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Artwork{}, fmt.Errorf("artwork %s: %w", id, ErrArtworkNotFound)
		}
		return Artwork{}, fmt.Errorf("getting artwork %s: %w", id, err)
	}
	return art, nil
}

// Insert persists a new artwork. The database assigns both the id and the
// creation timestamp atomically with the write; the returned Artwork carries
// them. The payload is validated before any database call.
func (s *Store) Insert(ctx context.Context, n NewArtwork) (Artwork, error) {
	if err := n.Validate(); err != nil {
		return Artwork{}, fmt.Errorf("validating artwork: %w", err)
	}

	art := Artwork{
		Title:       n.Title,
		Artist:      n.Artist,
		Description: n.Description,
		ImageURL:    n.ImageURL,
		Kind:        n.Kind,
		Dimensions:  n.Dimensions,
	}

	row := s.db.QueryRow(ctx, insertArtworkSQL,
		n.Title, n.Artist, n.Description, n.ImageURL, string(n.Kind),
		n.Dimensions.Width, n.Dimensions.Height, n.Dimensions.Depth)
	if err := row.Scan(&art.ID, &art.CreatedAt); err != nil {
		return Artwork{}, fmt.Errorf("inserting artwork: %w", err)
	}

	s.logger.Debug("inserted artwork", "id", art.ID, "title", art.Title)
	return art, nil
}

// SeedIfEmpty populates the gallery with the initial set when, and only
// when, the collection holds no records. It is safe to call on every listing
// request: the emptiness check makes repeat calls no-ops.
//
// The check and the batch write are not one atomic unit, so two concurrent
// first-time callers can both observe an empty gallery and both seed. That
// duplicate-seed window is an accepted limitation; the batch itself runs in
// a single transaction so a partial seed is never left behind.
//
// Returns true when the seed batch was written.
func (s *Store) SeedIfEmpty(ctx context.Context, initial []NewArtwork) (bool, error) {
	var count int64
	if err := s.db.QueryRow(ctx, countArtworksSQL).Scan(&count); err != nil {
		return false, fmt.Errorf("counting artworks: %w", err)
	}
	if count > 0 || len(initial) == 0 {
		return false, nil
	}

	for i, n := range initial {
		if err := n.Validate(); err != nil {
			return false, fmt.Errorf("validating seed artwork %d: %w", i, err)
		}
	}

	// Without a pool (unit tests) the batch runs non-transactionally.
	if s.pool == nil {
		if err := s.insertBatch(ctx, s.db, initial); err != nil {
			return false, err
		}
		s.logger.Info("seeded gallery", "count", len(initial))
		return true, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Debug("seed transaction rollback", "error", err)
		}
	}()

	if err := s.insertBatch(ctx, tx, initial); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("committing seed transaction: %w", err)
	}

	s.logger.Info("seeded gallery", "count", len(initial))
	return true, nil
}

// insertBatch writes the seed set against the given executor.
func (s *Store) insertBatch(ctx context.Context, db DBTX, artworks []NewArtwork) error {
	for i, n := range artworks {
		if _, err := db.Exec(ctx, seedArtworkSQL,
			n.Title, n.Artist, n.Description, n.ImageURL, string(n.Kind),
			n.Dimensions.Width, n.Dimensions.Height, n.Dimensions.Depth); err != nil {
			return fmt.Errorf("inserting seed artwork %d: %w", i, err)
		}
	}
	return nil
}

// scanArtwork reads one artwork row in listArtworksSQL/getArtworkSQL column order.
func scanArtwork(row pgx.Row) (Artwork, error) {
	var (
		art  Artwork
		kind string
	)
	err := row.Scan(&art.ID, &art.Title, &art.Artist, &art.Description,
		&art.ImageURL, &kind, &art.Dimensions.Width, &art.Dimensions.Height,
		&art.Dimensions.Depth, &art.CreatedAt)
	if err != nil {
		return Artwork{}, err
	}
	art.Kind = Kind(kind)
	return art, nil
}
