package model

// CompetitionData is a per-language snapshot of the competitive landscape
// for a fixed subnicho.
type CompetitionData struct {
	Language            string  `json:"idioma"`
	Competitors         int     `json:"concorrentes"`
	AvgChannelAgeMonths float64 `json:"idadeMediaMeses"`
	AvgTopViews         int64   `json:"mediaViewsTop"`
}

// EntryTimingData classifies whether a language market is still easy to
// enter ("porta aberta") and how many days remain before the window closes.
type EntryTimingData struct {
	Open           bool `json:"portaAberta"`
	DaysUntilClose int  `json:"diasAteFechar"`
}

// ComparisonData pairs a competition snapshot with its entry-window verdict.
type ComparisonData struct {
	CompetitionData
	Entry EntryTimingData `json:"janelaEntrada"`
}

// RecommendationData is the comparator's final pick: the least-saturated
// language plus a suggested title strategy.
type RecommendationData struct {
	Language    string `json:"idiomaRecomendado"`
	Competitors int    `json:"concorrentes"`
	Strategy    string `json:"estrategiaTitulos"`
	Reason      string `json:"justificativa"`
}
