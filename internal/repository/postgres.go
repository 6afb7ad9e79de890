package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placefinder-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMapStore persists rendered maps in PostgreSQL
type PostgresMapStore struct {
	db *pgxpool.Pool
}

// NewPostgresMapStore creates a new PostgreSQL map store
func NewPostgresMapStore(db *pgxpool.Pool) *PostgresMapStore {
	return &PostgresMapStore{db: db}
}

// EnsureSchema creates the rendered_maps table if it does not exist
func (r *PostgresMapStore) EnsureSchema(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS rendered_maps (
			id UUID PRIMARY KEY,
			origin_lat DOUBLE PRECISION NOT NULL,
			origin_lon DOUBLE PRECISION NOT NULL,
			document TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS rendered_maps_created_at_idx ON rendered_maps (created_at DESC);
	`

	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create rendered_maps table: %w", err)
	}
	return nil
}

// Save inserts or replaces a rendered map
func (r *PostgresMapStore) Save(ctx context.Context, m models.RenderedMap) error {
	sql := `
		INSERT INTO rendered_maps (id, origin_lat, origin_lon, document, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			origin_lat = EXCLUDED.origin_lat,
			origin_lon = EXCLUDED.origin_lon,
			document = EXCLUDED.document,
			created_at = EXCLUDED.created_at
	`

	_, err := r.db.Exec(ctx, sql, m.ID, m.Origin.Latitude, m.Origin.Longitude, string(m.Document), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to save map: %w", err)
	}
	return nil
}

// Get returns the map with the given id
func (r *PostgresMapStore) Get(ctx context.Context, id string) (*models.RenderedMap, error) {
	sql := `
		SELECT id::text, origin_lat, origin_lon, document, created_at
		FROM rendered_maps
		WHERE id = $1
	`

	mapID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrMapNotFound
	}

	return r.scan(r.db.QueryRow(ctx, sql, mapID))
}

// Latest returns the most recently stored map
func (r *PostgresMapStore) Latest(ctx context.Context) (*models.RenderedMap, error) {
	sql := `
		SELECT id::text, origin_lat, origin_lon, document, created_at
		FROM rendered_maps
		ORDER BY created_at DESC
		LIMIT 1
	`

	return r.scan(r.db.QueryRow(ctx, sql))
}

func (r *PostgresMapStore) scan(row pgx.Row) (*models.RenderedMap, error) {
	var (
		m   models.RenderedMap
		doc string
	)
	err := row.Scan(&m.ID, &m.Origin.Latitude, &m.Origin.Longitude, &doc, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMapNotFound
		}
		return nil, fmt.Errorf("repository: failed to load map: %w", err)
	}

	m.Document = []byte(doc)
	return &m, nil
}

// Count returns the number of stored maps
func (r *PostgresMapStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rendered_maps`).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count maps: %w", err)
	}
	return count, nil
}

// DeleteBefore removes every map created before the cutoff and returns how many were removed
func (r *PostgresMapStore) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM rendered_maps WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete maps: %w", err)
	}
	return tag.RowsAffected(), nil
}
