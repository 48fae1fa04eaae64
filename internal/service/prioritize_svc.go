package service

import (
	"fmt"
	"sort"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/pkg/ptbr"
)

// maxPrioritized caps the recommendation list.
const maxPrioritized = 5

// Narrative thresholds. First matching rule wins, in declaration order.
const (
	strongGrowthRate  = 15.0
	strongAvgViews    = 10000
	youngAgeMonths    = 12.0
	highViewVariance  = 0.35
	veteranAgeMonths  = 36.0
	moderateGrowthCap = 12.0
)

// PrioritizeService ranks validated subnichos by a batch-relative composite
// score and attaches narrative text.
type PrioritizeService struct{}

func NewPrioritizeService() *PrioritizeService {
	return &PrioritizeService{}
}

// Prioritize filters to validated subnichos, scores them against the batch
// maxima and returns the top 5 in descending score order. An empty validated
// subset yields an empty slice, never NaN scores.
func (s *PrioritizeService) Prioritize(items []model.SubnichoValidated) []model.SubnichoPrioritized {
	validated := make([]model.SubnichoValidated, 0, len(items))
	for _, it := range items {
		if it.Validated {
			validated = append(validated, it)
		}
	}
	if len(validated) == 0 {
		return []model.SubnichoPrioritized{}
	}

	var maxGrowth, maxViews float64
	for _, it := range validated {
		if it.GrowthRate > maxGrowth {
			maxGrowth = it.GrowthRate
		}
		if v := float64(it.AvgViewsPerVideo); v > maxViews {
			maxViews = v
		}
	}

	out := make([]model.SubnichoPrioritized, 0, len(validated))
	for _, it := range validated {
		out = append(out, model.SubnichoPrioritized{
			SubnichoValidated: it,
			Score:             CompositeScore(it.GrowthRate, float64(it.AvgViewsPerVideo), maxGrowth, maxViews),
			Strengths:         strengthsFor(it.SubnichoMetrics),
			Risks:             risksFor(it.SubnichoMetrics),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if len(out) > maxPrioritized {
		out = out[:maxPrioritized]
	}
	return out
}

// CompositeScore averages the two batch-normalized indicators into [0,1].
// A zero maximum contributes 0 instead of dividing by zero.
func CompositeScore(growth, views, maxGrowth, maxViews float64) float64 {
	var g, v float64
	if maxGrowth > 0 {
		g = growth / maxGrowth
	}
	if maxViews > 0 {
		v = views / maxViews
	}
	return (g + v) / 2
}

func strengthsFor(m model.SubnichoMetrics) string {
	switch {
	case m.GrowthRate >= strongGrowthRate:
		return fmt.Sprintf("Crescimento acelerado (%.1f%% ao mês), bem acima da média do nicho", m.GrowthRate)
	case m.AvgViewsPerVideo >= strongAvgViews:
		return fmt.Sprintf("Alto volume médio de visualizações (%s por vídeo)", ptbr.FormatInt(m.AvgViewsPerVideo))
	case m.AvgChannelAgeMonths <= youngAgeMonths:
		return "Subnicho jovem: canais com menos de um ano em média, espaço para novos entrantes"
	default:
		return "Métricas equilibradas de crescimento e audiência"
	}
}

func risksFor(m model.SubnichoMetrics) string {
	switch {
	case m.ViewVariance >= highViewVariance:
		return "Alta variância de visualizações: desempenho imprevisível entre vídeos"
	case m.AvgChannelAgeMonths >= veteranAgeMonths:
		return "Canais veteranos dominam o subnicho: concorrência consolidada"
	case m.GrowthRate < moderateGrowthCap:
		return "Crescimento moderado: a janela pode fechar se a concorrência aumentar"
	default:
		return "Nenhum risco relevante identificado nos indicadores atuais"
	}
}
