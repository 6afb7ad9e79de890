package repository

import (
	"context"
	"errors"

	"placefinder-api/internal/models"
)

// ErrMapNotFound is returned when no stored map matches the lookup.
var ErrMapNotFound = errors.New("repository: map not found")

// MapStore persists rendered map documents by id.
type MapStore interface {
	Save(ctx context.Context, m models.RenderedMap) error
	Get(ctx context.Context, id string) (*models.RenderedMap, error)
	Latest(ctx context.Context) (*models.RenderedMap, error)
}
