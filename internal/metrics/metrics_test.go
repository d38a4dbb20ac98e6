package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func TestNewWithRegistry(t *testing.T) {
	m := newTestMetrics()

	if m.HTTPRequestsTotal == nil {
		t.Error("expected HTTPRequestsTotal to be registered")
	}
	if m.DBQueryDuration == nil {
		t.Error("expected DBQueryDuration to be registered")
	}
	if m.MetaImageFallbackTotal == nil {
		t.Error("expected MetaImageFallbackTotal to be registered")
	}
}

func TestMetrics_RecordingDoesNotPanic(t *testing.T) {
	m := newTestMetrics()

	m.RecordHTTPRequest("GET", "/api/folders", 200, 12*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/boards", 500, 40*time.Millisecond)
	m.RecordDBQuery("select", "folders", 3*time.Millisecond, nil)
	m.RecordDBQuery("insert", "boards", 5*time.Millisecond, errors.New("duplicate key"))
	m.RecordExternalCall("page_scrape", "GET", 200, 100*time.Millisecond, nil)
	m.RecordExternalCall("google_oauth", "POST", 0, time.Second, errors.New("timeout"))
	m.UpdateDBStats(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2, MaxOpenConnections: 25})
	m.IncrementFolderCreated()
	m.IncrementBoardCreated()
	m.IncrementBookmarkCreated()
	m.IncrementInvitationSent("folder")
	m.IncrementInvitationResponded("board", "accepted")
	m.IncrementMetaImageFallback()
	m.SetFoldersTotal(10)
	m.SetBoardsTotal(4)
	m.SetPendingInvitationsTotal(2)
}

func TestMetrics_NilReceiverIsNoOp(t *testing.T) {
	var m *Metrics

	// Recorders are reachable with a nil receiver when the server runs
	// without metrics; every one must be a silent no-op.
	m.RecordHTTPRequest("GET", "/api/folders", 200, time.Millisecond)
	m.RecordDBQuery("select", "folders", time.Millisecond, nil)
	m.RecordExternalCall("page_scrape", "GET", 200, time.Millisecond, nil)
	m.UpdateDBStats(sql.DBStats{OpenConnections: 1})
	m.IncrementFolderCreated()
	m.IncrementInvitationSent("folder")
	m.SetFoldersTotal(1)
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{302, "3xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := categorizeStatus(tt.status); got != tt.want {
			t.Errorf("categorizeStatus(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{
			name:     "uuid replaced",
			endpoint: "/api/folders/6e8bc430-9c3a-11d9-9669-0800200c9a66",
			want:     "/api/folders/{id}",
		},
		{
			name:     "multiple uuids replaced",
			endpoint: "/api/boards/6e8bc430-9c3a-11d9-9669-0800200c9a66/cards/0f14d0ab-9605-4a62-a9e4-5ed26688389b",
			want:     "/api/boards/{id}/cards/{id}",
		},
		{
			name:     "plain path untouched",
			endpoint: "/api/folders",
			want:     "/api/folders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEndpoint(tt.endpoint); got != tt.want {
				t.Errorf("NormalizeEndpoint(%q) = %q, want %q", tt.endpoint, got, tt.want)
			}
		})
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		want     bool
	}{
		{"/metrics", true},
		{"/health", true},
		{"/ready", true},
		{"/api/folders", false},
	}

	for _, tt := range tests {
		if got := ShouldSkipEndpoint(tt.endpoint); got != tt.want {
			t.Errorf("ShouldSkipEndpoint(%q) = %v, want %v", tt.endpoint, got, tt.want)
		}
	}
}
