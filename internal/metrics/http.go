package metrics

import (
	"fmt"
	"time"
)

// RecordHTTPRequest records metrics for a handled HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		statusLabel := categorizeStatus(status)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusLabel).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// categorizeStatus groups status codes to keep label cardinality low
func categorizeStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return fmt.Sprintf("%d", status)
	}
}

// ShouldSkipEndpoint reports whether an endpoint is excluded from HTTP metrics
func ShouldSkipEndpoint(endpoint string) bool {
	skipEndpoints := map[string]bool{
		"/metrics": true,
		"/health":  true,
		"/ready":   true,
	}
	return skipEndpoints[endpoint]
}
