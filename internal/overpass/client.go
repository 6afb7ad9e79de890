package overpass

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"placefinder-api/internal/geo"
	"placefinder-api/internal/logging"
	"placefinder-api/internal/metrics"
	"placefinder-api/internal/models"
)

// UnnamedPlace is used for elements without a name tag.
const UnnamedPlace = "Unnamed Place"

// maxBodySize bounds how much of an upstream response is read.
const maxBodySize = 16 << 20

// Cache stores raw upstream responses. Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Client queries an Overpass API interpreter for nodes around a point.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      Cache
	cacheTTL   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithCache caches upstream responses for ttl.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the interpreter endpoint at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Lat  *float64          `json:"lat"`
	Lon  *float64          `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// BuildQuery returns the Overpass QL query for nodes matching predicate
// within radiusMeters of origin.
func BuildQuery(origin models.Coordinate, predicate string, radiusMeters float64) string {
	return fmt.Sprintf("[out:json];node[%s](around:%s,%s,%s);out;",
		predicate,
		formatFloat(radiusMeters),
		formatFloat(origin.Latitude),
		formatFloat(origin.Longitude),
	)
}

// FindPlaces returns up to limit nodes matching predicate within radiusMeters
// of origin, nearest first. Elements without a location are skipped; equal
// distances keep upstream order.
func (c *Client) FindPlaces(ctx context.Context, origin models.Coordinate, predicate string, radiusMeters float64, limit int) ([]models.Place, error) {
	query := BuildQuery(origin, predicate, radiusMeters)

	body, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("overpass: failed to decode response: %w", err)
	}

	places := make([]models.Place, 0, len(resp.Elements))
	for _, e := range resp.Elements {
		if e.Lat == nil || e.Lon == nil {
			continue
		}

		name := e.Tags["name"]
		if name == "" {
			name = UnnamedPlace
		}

		place := models.Place{Name: name, Lat: *e.Lat, Lon: *e.Lon}
		place.Distance = geo.Distance(origin, place.Location())
		places = append(places, place)
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Distance < places[j].Distance
	})

	if limit >= 0 && len(places) > limit {
		places = places[:limit]
	}

	return places, nil
}

func (c *Client) fetch(ctx context.Context, query string) ([]byte, error) {
	logger := logging.GetLoggerFromContext(ctx)
	key := cacheKey(query)

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, key)
		if err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("overpass cache lookup failed")
		} else if cached != nil {
			metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeCacheHit).Inc()
			return cached, nil
		}
	}

	body, err := c.do(ctx, query)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}
	metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeOK).Inc()

	if c.cache != nil && json.Valid(body) {
		if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("overpass cache store failed")
		}
	}

	return body, nil
}

func (c *Client) do(ctx context.Context, query string) ([]byte, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("overpass: invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("data", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("overpass: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("overpass: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("overpass: failed to read response: %w", err)
	}

	return body, nil
}

// StatusError is returned when the interpreter answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("overpass: unexpected status %d", e.StatusCode)
}

func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return "overpass:" + hex.EncodeToString(sum[:])
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
