package service

import (
	"math"
	"testing"
	"time"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 0},
		{"one full month", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 1},
		{"day not reached", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 0},
		{"year boundary", time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), 3},
		{"three years", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 36},
		{"from after to", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("MonthsBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateZeroChannels(t *testing.T) {
	svc := NewMetricsService(NewSyntheticSource(1))
	out := svc.Calculate([]model.Subnicho{{Label: "vazio"}})

	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	m := out[0]
	if m.AvgSubscribersPerVideo != 0 || m.AvgChannelAgeMonths != 0 {
		t.Errorf("zero-channel subnicho should have zeroed averages, got subs=%v age=%v",
			m.AvgSubscribersPerVideo, m.AvgChannelAgeMonths)
	}
	if m.GrowthRate != 0 || m.AvgViewsPerVideo != 0 || m.ViewVariance != 0 {
		t.Errorf("zero-channel subnicho should not draw synthetic indicators")
	}
	if math.IsNaN(m.AvgSubscribersPerVideo) || math.IsNaN(m.AvgChannelAgeMonths) {
		t.Error("averages must never be NaN")
	}
}

func TestCalculateRangesAndCardinality(t *testing.T) {
	svc := NewMetricsService(NewSyntheticSource(42))
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	in := []model.Subnicho{
		{Label: "a", Channels: []model.Channel{
			{ChannelID: "c1", Subscribers: 5000, TotalVideos: 100, CreatedAt: now.AddDate(0, -12, 0)},
			{ChannelID: "c2", Subscribers: 3000, TotalVideos: 50, CreatedAt: now.AddDate(0, -6, 0)},
		}},
		{Label: "b", Channels: []model.Channel{
			{ChannelID: "c3", Subscribers: 800, TotalVideos: 20, CreatedAt: now.AddDate(0, -24, 0)},
		}},
	}

	out := svc.Calculate(in)
	if len(out) != len(in) {
		t.Fatalf("cardinality mismatch: got %d, want %d", len(out), len(in))
	}

	for _, m := range out {
		if m.GrowthRate < 0 || m.GrowthRate >= 20 {
			t.Errorf("%s: growth rate %v outside [0,20)", m.Label, m.GrowthRate)
		}
		if m.AvgViewsPerVideo < 1000 || m.AvgViewsPerVideo >= 16000 {
			t.Errorf("%s: avg views %d outside [1000,16000)", m.Label, m.AvgViewsPerVideo)
		}
		if m.ViewVariance < 0 || m.ViewVariance >= 0.5 {
			t.Errorf("%s: variance %v outside [0,0.5)", m.Label, m.ViewVariance)
		}
	}

	// Derived statistics for the first subnicho are exact.
	a := out[0]
	if want := float64(8000) / float64(150); a.AvgSubscribersPerVideo != want {
		t.Errorf("avg subs per video = %v, want %v", a.AvgSubscribersPerVideo, want)
	}
	if a.AvgChannelAgeMonths != 9 {
		t.Errorf("avg channel age = %v, want 9", a.AvgChannelAgeMonths)
	}
}

func TestCalculateDeterministicForSeed(t *testing.T) {
	in := []model.Subnicho{{Label: "x", Channels: []model.Channel{{ChannelID: "c", TotalVideos: 1}}}}

	a := NewMetricsService(NewSyntheticSource(7)).Calculate(in)
	b := NewMetricsService(NewSyntheticSource(7)).Calculate(in)

	if a[0].GrowthRate != b[0].GrowthRate || a[0].AvgViewsPerVideo != b[0].AvgViewsPerVideo {
		t.Error("same seed must produce identical indicators")
	}
}
