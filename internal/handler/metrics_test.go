package handler

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveStage(t *testing.T) {
	// InitMetrics registers on the default registry and can only run once
	// per process, so this is the single test that calls it.
	InitMetrics(nil)

	observeStage("extract", time.Now())
	observeStage("metrics", time.Now())

	if got := testutil.CollectAndCount(Metrics.PipelineDuration); got != 2 {
		t.Errorf("pipeline stage series = %d, want 2", got)
	}
}

func TestSanitizeEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/searches/01HQZX3V8N4T2M9K7P5R1W6Y0A", "/api/searches/:searchId"},
		{"/api/analysis/extract", "/api/analysis/extract"},
		{"/health/live", "/health/live"},
	}
	for _, tt := range tests {
		if got := sanitizeEndpoint(tt.path); got != tt.want {
			t.Errorf("sanitizeEndpoint(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
