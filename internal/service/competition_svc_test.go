package service

import (
	"context"
	"testing"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

func TestCompareSimulatedNeverEmpty(t *testing.T) {
	svc := NewCompetitionService(nil, nil, 123)

	comparisons, rec, err := svc.Compare(context.Background(), "horta urbana", []string{"pt", "en", "es"}, 0)
	if err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	if len(comparisons) != 3 {
		t.Fatalf("expected 3 comparisons, got %d", len(comparisons))
	}
	if rec == nil {
		t.Fatal("recommendation must not be nil for a non-empty language list")
	}

	for _, c := range comparisons {
		if c.Competitors < 0 || c.Competitors > 25 {
			t.Errorf("%s: competitors %d outside [0,25]", c.Language, c.Competitors)
		}
		if c.AvgChannelAgeMonths < 0 || c.AvgChannelAgeMonths >= 12 {
			t.Errorf("%s: avg age %v outside [0,12)", c.Language, c.AvgChannelAgeMonths)
		}
		if c.AvgTopViews < 1000 || c.AvgTopViews >= 50000 {
			t.Errorf("%s: avg top views %d outside [1000,50000)", c.Language, c.AvgTopViews)
		}
	}
}

func TestCompareSimulatedDiscriminates(t *testing.T) {
	svc := NewCompetitionService(nil, nil, 9)

	counts := make(map[int]bool)
	sawOpen := false
	for i := 0; i < 40; i++ {
		comparisons, _, err := svc.Compare(context.Background(), "horta urbana", []string{"pt", "en", "es"}, 20)
		if err != nil {
			t.Fatalf("Compare() failed: %v", err)
		}
		for _, comp := range comparisons {
			counts[comp.Competitors] = true
			if comp.Entry.Open {
				sawOpen = true
			}
		}
	}

	if len(counts) < 2 {
		t.Error("simulated snapshots must vary competitor counts, not peg every language at one value")
	}
	if !sawOpen {
		t.Error("simulated snapshots must sometimes produce an open entry window")
	}
}

func TestCompareKeepsRequestedLanguageLabels(t *testing.T) {
	svc := NewCompetitionService(nil, nil, 5)

	comparisons, _, err := svc.Compare(context.Background(), "xadrez", []string{"ES", " en ", "pt"}, 0)
	if err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	seen := make(map[string]int)
	for _, comp := range comparisons {
		seen[comp.Language]++
	}
	for _, want := range []string{"es", "en", "pt"} {
		if seen[want] != 1 {
			t.Errorf("language %q appears %d times, want exactly 1", want, seen[want])
		}
	}

	// The service never rewrites an unknown code into another language;
	// that would mislabel snapshots and collide cache keys.
	comparisons, _, err = svc.Compare(context.Background(), "xadrez", []string{"fr"}, 0)
	if err != nil {
		t.Fatalf("Compare() failed: %v", err)
	}
	if len(comparisons) != 1 || comparisons[0].Language != "fr" {
		t.Errorf("unknown code must keep its label, got %+v", comparisons)
	}
}

func TestClassifyEntry(t *testing.T) {
	tests := []struct {
		name        string
		competitors int
		avgAge      float64
		wantOpen    bool
		wantDays    int
	}{
		{"few young competitors", 5, 1.0, true, 60},
		{"brand new market", 0, 0, true, 90},
		{"at both thresholds", 10, 3.0, true, 0},
		{"too many competitors", 11, 1.0, false, 0},
		{"too old", 5, 4.0, false, 0},
		{"fractional age", 8, 2.5, true, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyEntry(tt.competitors, tt.avgAge)
			if got.Open != tt.wantOpen {
				t.Errorf("Open = %v, want %v", got.Open, tt.wantOpen)
			}
			if got.DaysUntilClose != tt.wantDays {
				t.Errorf("DaysUntilClose = %d, want %d", got.DaysUntilClose, tt.wantDays)
			}
		})
	}
}

func TestSortComparisonsOpenFirst(t *testing.T) {
	items := []model.ComparisonData{
		{CompetitionData: model.CompetitionData{Language: "pt", Competitors: 20}, Entry: model.EntryTimingData{Open: false}},
		{CompetitionData: model.CompetitionData{Language: "en", Competitors: 8}, Entry: model.EntryTimingData{Open: true}},
		{CompetitionData: model.CompetitionData{Language: "es", Competitors: 3}, Entry: model.EntryTimingData{Open: true}},
	}

	SortComparisons(items)

	if items[0].Language != "es" || items[1].Language != "en" || items[2].Language != "pt" {
		t.Errorf("unexpected order: %s, %s, %s", items[0].Language, items[1].Language, items[2].Language)
	}
}

func TestRecommend(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if rec := Recommend(nil); rec != nil {
			t.Errorf("expected nil recommendation, got %+v", rec)
		}
	})

	t.Run("open window with few competitors uses direct keywords", func(t *testing.T) {
		items := []model.ComparisonData{
			{CompetitionData: model.CompetitionData{Language: "es", Competitors: 3}, Entry: model.EntryTimingData{Open: true}},
		}
		rec := Recommend(items)
		if rec.Language != "es" {
			t.Errorf("language = %q, want es", rec.Language)
		}
		if rec.Strategy != "Use palavras-chave diretas do subnicho nos títulos" {
			t.Errorf("unexpected strategy: %q", rec.Strategy)
		}
	})

	t.Run("saturated market differentiates with micro-subnichos", func(t *testing.T) {
		items := []model.ComparisonData{
			{CompetitionData: model.CompetitionData{Language: "pt", Competitors: 18}, Entry: model.EntryTimingData{Open: false}},
			{CompetitionData: model.CompetitionData{Language: "en", Competitors: 12}, Entry: model.EntryTimingData{Open: false}},
		}
		rec := Recommend(items)
		if rec.Language != "en" {
			t.Errorf("language = %q, want en (least saturated)", rec.Language)
		}
		if rec.Strategy != "Diferencie com micro-subnichos: segmente os títulos dentro do tema" {
			t.Errorf("unexpected strategy: %q", rec.Strategy)
		}
	})
}
