package metrics

import (
	"regexp"
	"time"
)

var uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// RecordExternalCall records metrics for a call to an external service
// such as the OAuth provider, object storage, or a scraped page
func (m *Metrics) RecordExternalCall(target, method string, status int, duration time.Duration, err error) {
	m.safeExecute("RecordExternalCall", func() {
		statusLabel := categorizeStatus(status)

		m.ExternalRequestsTotal.WithLabelValues(target, method, statusLabel).Inc()
		m.ExternalRequestDuration.WithLabelValues(target, statusLabel).Observe(duration.Seconds())

		if err != nil {
			m.ExternalErrors.WithLabelValues(target, getErrorType(err, status)).Inc()
		}
	})
}

// NormalizeEndpoint replaces identifiers in paths to keep cardinality low
func NormalizeEndpoint(endpoint string) string {
	return uuidPattern.ReplaceAllString(endpoint, "{id}")
}

// getErrorType classifies an external call failure
func getErrorType(err error, status int) string {
	if err != nil {
		return "network_error"
	}
	switch {
	case status >= 400 && status < 500:
		return "client_error"
	case status >= 500:
		return "server_error"
	default:
		return "unknown"
	}
}
