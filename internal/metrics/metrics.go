package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of an upstream lookup.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeCacheHit = "cache_hit"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "placefinder",
		Subsystem: "overpass",
		Name:      "requests_total",
		Help:      "Overpass lookups by outcome",
	}, []string{"outcome"})

	UpstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "placefinder",
		Subsystem: "overpass",
		Name:      "request_duration_seconds",
		Help:      "Latency of Overpass requests that reached the network",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	FindRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "placefinder",
		Subsystem: "find",
		Name:      "requests_total",
		Help:      "Successful place searches by category",
	}, []string{"category"})

	MapsRendered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "placefinder",
		Subsystem: "render",
		Name:      "maps_total",
		Help:      "Map documents rendered and stored",
	})
)

// Handler serves the default registry in the Prometheus exposition format.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
