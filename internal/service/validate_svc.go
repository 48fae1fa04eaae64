package service

import (
	"fmt"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/pkg/ptbr"
)

// ValidateService applies threshold criteria to subnicho metrics. Pure, no
// side effects: each of the three conditions is checked independently and
// every failing one appends a human-readable reason.
type ValidateService struct{}

func NewValidateService() *ValidateService {
	return &ValidateService{}
}

// Validate flags each subnicho. Reasons is empty exactly when all three
// checks pass.
func (s *ValidateService) Validate(items []model.SubnichoMetrics, c model.Criteria) []model.SubnichoValidated {
	out := make([]model.SubnichoValidated, 0, len(items))
	for _, m := range items {
		reasons := []string{}

		if m.GrowthRate < c.MinGrowthRate {
			reasons = append(reasons, fmt.Sprintf(
				"Taxa de crescimento (%.1f%%) abaixo do mínimo (%g%%)",
				m.GrowthRate, c.MinGrowthRate))
		}
		if m.AvgViewsPerVideo < c.MinAvgViews {
			reasons = append(reasons, fmt.Sprintf(
				"Média de visualizações (%s) abaixo do mínimo (%s)",
				ptbr.FormatInt(m.AvgViewsPerVideo), ptbr.FormatInt(c.MinAvgViews)))
		}
		if m.AvgChannelAgeMonths > c.MaxAvgAgeMonths {
			reasons = append(reasons, fmt.Sprintf(
				"Idade média dos canais (%s meses) acima do máximo (%g meses)",
				ptbr.FormatFloat(m.AvgChannelAgeMonths, 0), c.MaxAvgAgeMonths))
		}

		out = append(out, model.SubnichoValidated{
			SubnichoMetrics: m,
			Validated:       len(reasons) == 0,
			Reasons:         reasons,
		})
	}
	return out
}
