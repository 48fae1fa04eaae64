package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTopicsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("region"); got != "US" {
			t.Errorf("region query = %q, want US", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"topics":[{"title":"space tourism","value":90,"category":"science"}]}`))
	}))
	defer srv.Close()

	svc := NewTrendingService(srv.URL, nil)
	resp := svc.Topics(context.Background(), "us")

	if resp.Source != "upstream" {
		t.Errorf("source = %q, want upstream", resp.Source)
	}
	if resp.Region != "US" {
		t.Errorf("region = %q, want US", resp.Region)
	}
	if resp.Error != "" {
		t.Errorf("unexpected error field: %q", resp.Error)
	}
	if len(resp.Topics) != 1 || resp.Topics[0].Title != "space tourism" {
		t.Errorf("unexpected topics: %+v", resp.Topics)
	}
}

func TestTopicsFallbackOnUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewTrendingService(srv.URL, nil)
	resp := svc.Topics(context.Background(), "")

	if resp.Source != "fallback" {
		t.Errorf("source = %q, want fallback", resp.Source)
	}
	if resp.Region != "BR" {
		t.Errorf("empty region must default to BR, got %q", resp.Region)
	}
	if resp.Error == "" {
		t.Error("fallback response must carry the upstream error")
	}
	if len(resp.Topics) != 5 {
		t.Errorf("fallback list has %d topics, want 5", len(resp.Topics))
	}
}

func TestTopicsFallbackWhenUnconfigured(t *testing.T) {
	svc := NewTrendingService("", nil)
	resp := svc.Topics(context.Background(), "BR")

	if resp.Source != "fallback" {
		t.Errorf("source = %q, want fallback", resp.Source)
	}
	if len(resp.Topics) == 0 {
		t.Error("fallback list must not be empty")
	}
}
