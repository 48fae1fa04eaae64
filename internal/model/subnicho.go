package model

// Subnicho is a candidate narrow topic inside a broader niche: a keyword
// label plus the channels whose recent titles surfaced it. Labels are unique
// within one extraction batch; a channel may appear under several labels.
type Subnicho struct {
	Label    string    `json:"subnicho"`
	Channels []Channel `json:"canais"`
}

// SubnichoMetrics extends Subnicho with derived statistics. All fields are
// computed once from the immutable channel list and never recomputed in place.
type SubnichoMetrics struct {
	Subnicho
	AvgSubscribersPerVideo float64 `json:"mediaInscritosPorVideo"`
	GrowthRate             float64 `json:"taxaCrescimentoMensal"`
	AvgViewsPerVideo       int64   `json:"mediaVisualizacoes"`
	AvgChannelAgeMonths    float64 `json:"idadeMediaMeses"`
	ViewVariance           float64 `json:"varianciaVisualizacoes"`
}

// SubnichoValidated extends SubnichoMetrics with the threshold verdict.
// Reasons is empty exactly when Validated is true.
type SubnichoValidated struct {
	SubnichoMetrics
	Validated bool     `json:"validado"`
	Reasons   []string `json:"motivosRejeicao"`
}

// SubnichoPrioritized extends SubnichoValidated with a batch-relative score
// in [0,1] and narrative text. Only validated subnichos are ever prioritized.
type SubnichoPrioritized struct {
	SubnichoValidated
	Score     float64 `json:"pontuacao"`
	Strengths string  `json:"pontosFortes"`
	Risks     string  `json:"riscos"`
}

// Criteria are the validation thresholds applied to each subnicho.
type Criteria struct {
	MinGrowthRate   float64 `json:"crescimentoMinimo"`
	MinAvgViews     int64   `json:"visualizacoesMinimas"`
	MaxAvgAgeMonths float64 `json:"idadeMaximaMeses"`
}

// MicroSubnicho is a further-specialized topic derived from a single
// channel's own title patterns.
type MicroSubnicho struct {
	Label        string   `json:"microsubnicho"`
	Occurrences  int      `json:"ocorrencias"`
	SampleTitles []string `json:"titulosExemplo"`
}
