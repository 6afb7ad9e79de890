package service

import (
	"context"
	"fmt"
	"time"

	"placefinder-api/internal/logging"
	"placefinder-api/internal/metrics"
	"placefinder-api/internal/models"
	"placefinder-api/internal/registry"
	"placefinder-api/internal/render"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Defaults applied when Options leaves a field zero.
const (
	DefaultRadius      = 10000.0
	DefaultLimit       = 10
	DefaultConcurrency = 4
)

// PlacesFinder looks up places matching a predicate around an origin
type PlacesFinder interface {
	FindPlaces(ctx context.Context, origin models.Coordinate, predicate string, radiusMeters float64, limit int) ([]models.Place, error)
}

// MapSaver persists rendered maps
type MapSaver interface {
	Save(ctx context.Context, m models.RenderedMap) error
}

// Options tunes a PlacesService
type Options struct {
	Radius      float64
	Limit       int
	Concurrency int
}

// PlacesService contains the core logic of a place search
type PlacesService struct {
	finder      PlacesFinder
	maps        MapSaver
	radius      float64
	limit       int
	concurrency int

	now   func() time.Time
	newID func() string
}

// FindResult is the outcome of a place search
type FindResult struct {
	Places models.CategoryResult
	MapID  string
}

// NewPlacesService creates a new places service
func NewPlacesService(finder PlacesFinder, maps MapSaver, opts Options) *PlacesService {
	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultLimit
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = DefaultConcurrency
	}

	return &PlacesService{
		finder:      finder,
		maps:        maps,
		radius:      opts.Radius,
		limit:       opts.Limit,
		concurrency: opts.Concurrency,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Find searches every place type of category around origin, renders the
// results on a map and stores it. Upstream failures degrade the affected
// label to an empty, upstream_error result; storage failures are returned.
func (s *PlacesService) Find(ctx context.Context, origin models.Coordinate, category registry.Category) (*FindResult, error) {
	result := make(models.CategoryResult, len(category.PlaceTypes))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, pt := range category.PlaceTypes {
		g.Go(func() error {
			result[i] = s.lookup(ctx, origin, pt)
			return nil
		})
	}
	g.Wait()

	doc, err := render.Render(origin, result)
	if err != nil {
		return nil, fmt.Errorf("service: failed to render map: %w", err)
	}

	m := models.RenderedMap{
		ID:        s.newID(),
		Origin:    origin,
		Document:  doc,
		CreatedAt: s.now(),
	}
	if err := s.maps.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("service: failed to store map: %w", err)
	}

	metrics.FindRequests.WithLabelValues(category.Name).Inc()
	metrics.MapsRendered.Inc()

	return &FindResult{Places: result, MapID: m.ID}, nil
}

func (s *PlacesService) lookup(ctx context.Context, origin models.Coordinate, pt registry.PlaceType) models.LabelResult {
	places, err := s.finder.FindPlaces(ctx, origin, pt.Predicate, s.radius, s.limit)
	if err != nil {
		logger := logging.GetLoggerFromContext(ctx)
		logger.Error().Err(err).
			Str("label", pt.Label).
			Str("predicate", pt.Predicate).
			Msg("place lookup failed, returning no results")

		return models.LabelResult{Label: pt.Label, Places: []models.Place{}, Status: models.StatusUpstreamError}
	}

	if places == nil {
		places = []models.Place{}
	}
	return models.LabelResult{Label: pt.Label, Places: places, Status: models.StatusOK}
}
