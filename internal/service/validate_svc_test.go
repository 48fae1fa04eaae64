package service

import (
	"reflect"
	"testing"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

func metricsFor(label string, growth float64, views int64, age float64) model.SubnichoMetrics {
	return model.SubnichoMetrics{
		Subnicho:            model.Subnicho{Label: label},
		GrowthRate:          growth,
		AvgViewsPerVideo:    views,
		AvgChannelAgeMonths: age,
	}
}

func TestValidate(t *testing.T) {
	criteria := model.Criteria{MinGrowthRate: 10, MinAvgViews: 5000, MaxAvgAgeMonths: 30}

	tests := []struct {
		name        string
		in          model.SubnichoMetrics
		validated   bool
		wantReasons []string
	}{
		{
			name:        "all thresholds met",
			in:          metricsFor("a", 12, 6000, 24),
			validated:   true,
			wantReasons: []string{},
		},
		{
			name:      "growth below minimum",
			in:        metricsFor("b", 5, 8000, 20),
			validated: false,
			wantReasons: []string{
				"Taxa de crescimento (5.0%) abaixo do mínimo (10%)",
			},
		},
		{
			name:      "views below minimum",
			in:        metricsFor("c", 12, 3000, 20),
			validated: false,
			wantReasons: []string{
				"Média de visualizações (3.000) abaixo do mínimo (5.000)",
			},
		},
		{
			name:      "age above maximum",
			in:        metricsFor("d", 12, 6000, 40),
			validated: false,
			wantReasons: []string{
				"Idade média dos canais (40 meses) acima do máximo (30 meses)",
			},
		},
		{
			name:      "all three fail",
			in:        metricsFor("e", 2, 1200, 48),
			validated: false,
			wantReasons: []string{
				"Taxa de crescimento (2.0%) abaixo do mínimo (10%)",
				"Média de visualizações (1.200) abaixo do mínimo (5.000)",
				"Idade média dos canais (48 meses) acima do máximo (30 meses)",
			},
		},
		{
			name:        "exactly at thresholds passes",
			in:          metricsFor("f", 10, 5000, 30),
			validated:   true,
			wantReasons: []string{},
		},
	}

	svc := NewValidateService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := svc.Validate([]model.SubnichoMetrics{tt.in}, criteria)
			if len(out) != 1 {
				t.Fatalf("expected 1 result, got %d", len(out))
			}
			got := out[0]
			if got.Validated != tt.validated {
				t.Errorf("Validated = %v, want %v", got.Validated, tt.validated)
			}
			if !reflect.DeepEqual(got.Reasons, tt.wantReasons) {
				t.Errorf("Reasons = %q, want %q", got.Reasons, tt.wantReasons)
			}
		})
	}
}

func TestValidatePreservesOrderAndCardinality(t *testing.T) {
	svc := NewValidateService()
	in := []model.SubnichoMetrics{
		metricsFor("primeiro", 15, 9000, 10),
		metricsFor("segundo", 1, 100, 90),
		metricsFor("terceiro", 11, 5500, 25),
	}

	out := svc.Validate(in, model.Criteria{MinGrowthRate: 10, MinAvgViews: 5000, MaxAvgAgeMonths: 30})
	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	for i, v := range out {
		if v.Label != in[i].Label {
			t.Errorf("result %d: label %q, want %q", i, v.Label, in[i].Label)
		}
	}
	if !out[0].Validated || out[1].Validated || !out[2].Validated {
		t.Error("validation verdicts do not match expectations")
	}
}
