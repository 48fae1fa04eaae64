package service

import (
	"reflect"
	"testing"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

func validatedFor(label string, growth float64, views int64, age float64, ok bool) model.SubnichoValidated {
	return model.SubnichoValidated{
		SubnichoMetrics: metricsFor(label, growth, views, age),
		Validated:       ok,
		Reasons:         []string{},
	}
}

func TestPrioritizeEmptyValidated(t *testing.T) {
	svc := NewPrioritizeService()

	out := svc.Prioritize(nil)
	if out == nil || len(out) != 0 {
		t.Errorf("nil input: got %v, want empty non-nil slice", out)
	}

	out = svc.Prioritize([]model.SubnichoValidated{
		validatedFor("rejeitado", 1, 100, 90, false),
	})
	if len(out) != 0 {
		t.Errorf("all-rejected input: got %d results, want 0", len(out))
	}
}

func TestPrioritizeFiltersSortsAndCaps(t *testing.T) {
	svc := NewPrioritizeService()
	in := []model.SubnichoValidated{
		validatedFor("a", 10, 5000, 20, true),
		validatedFor("b", 20, 15000, 10, true),
		validatedFor("rejeitado", 19, 14000, 5, false),
		validatedFor("c", 15, 9000, 15, true),
		validatedFor("d", 12, 7000, 18, true),
		validatedFor("e", 18, 12000, 8, true),
		validatedFor("f", 11, 6000, 22, true),
	}

	out := svc.Prioritize(in)
	if len(out) != 5 {
		t.Fatalf("expected 5 results, got %d", len(out))
	}
	for _, p := range out {
		if p.Label == "rejeitado" {
			t.Error("rejected subnicho must not be prioritized")
		}
		if !p.Validated {
			t.Errorf("%s: unvalidated entry in output", p.Label)
		}
		if p.Score < 0 || p.Score > 1 {
			t.Errorf("%s: score %v outside [0,1]", p.Label, p.Score)
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Errorf("scores not descending at index %d: %v > %v", i, out[i].Score, out[i-1].Score)
		}
	}
	if out[0].Label != "b" {
		t.Errorf("batch maximum should rank first, got %q", out[0].Label)
	}
	if out[0].Score != 1 {
		t.Errorf("batch maximum score = %v, want 1", out[0].Score)
	}
}

func TestPrioritizeIdempotent(t *testing.T) {
	svc := NewPrioritizeService()
	in := []model.SubnichoValidated{
		validatedFor("x", 14, 8000, 16, true),
		validatedFor("y", 9, 11000, 28, true),
		validatedFor("z", 17, 4000, 40, true),
	}

	first := svc.Prioritize(in)
	second := svc.Prioritize(in)
	if !reflect.DeepEqual(first, second) {
		t.Error("prioritization must be deterministic for identical input")
	}
}

func TestCompositeScore(t *testing.T) {
	tests := []struct {
		name                      string
		growth, views, maxG, maxV float64
		want                      float64
	}{
		{"both at max", 10, 5000, 10, 5000, 1},
		{"half of each", 5, 2500, 10, 5000, 0.5},
		{"zero maxima", 0, 0, 0, 0, 0},
		{"zero growth max only", 0, 5000, 0, 5000, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompositeScore(tt.growth, tt.views, tt.maxG, tt.maxV); got != tt.want {
				t.Errorf("CompositeScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNarratives(t *testing.T) {
	svc := NewPrioritizeService()

	out := svc.Prioritize([]model.SubnichoValidated{
		validatedFor("forte", 16, 6000, 20, true),
	})
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	if out[0].Strengths == "" || out[0].Risks == "" {
		t.Error("narrative fields must always be populated")
	}
	if want := "Crescimento acelerado (16.0% ao mês), bem acima da média do nicho"; out[0].Strengths != want {
		t.Errorf("Strengths = %q, want %q", out[0].Strengths, want)
	}
}
