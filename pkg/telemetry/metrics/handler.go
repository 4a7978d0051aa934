package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
// Schedule mode mounts it at /metrics so a long-lived process can be
// scraped between runs.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(
		c.registry,
		promhttp.HandlerOpts{
			// Prefer OpenMetrics encoding when the scraper negotiates it.
			EnableOpenMetrics: true,

			// Rely on the server's timeout and leave concurrency uncapped;
			// a housekeeping daemon sees one scraper, not a fleet.
			Timeout:             0,
			MaxRequestsInFlight: 0,

			ErrorHandling: promhttp.ContinueOnError,
			ErrorLog:      nil,
		},
	)
}

// HandlerWithOptions returns an HTTP handler with custom options for
// callers that need a collection timeout or stricter error handling.
func (c *Collector) HandlerWithOptions(opts promhttp.HandlerOpts) http.Handler {
	return promhttp.HandlerFor(c.registry, opts)
}
