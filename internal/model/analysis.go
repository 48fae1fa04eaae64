package model

// ExtractRequest is the API request body for subnicho extraction.
type ExtractRequest struct {
	Niche       string `json:"nicho"`
	Language    string `json:"idioma"`
	MaxChannels int    `json:"maxCanais"`
}

// MetricsRequest feeds extracted subnichos into the metrics calculator.
type MetricsRequest struct {
	Subnichos []Subnicho `json:"subnichos"`
}

// ValidateRequest applies threshold criteria to calculated metrics.
type ValidateRequest struct {
	Subnichos []SubnichoMetrics `json:"subnichos"`
	Criteria  Criteria          `json:"criterios"`
}

// PrioritizeRequest ranks validated subnichos.
type PrioritizeRequest struct {
	Subnichos []SubnichoValidated `json:"subnichos"`
}

// PipelineRequest runs the whole extract→metrics→validate→prioritize chain.
type PipelineRequest struct {
	Niche       string   `json:"nicho"`
	Language    string   `json:"idioma"`
	MaxChannels int      `json:"maxCanais"`
	Criteria    Criteria `json:"criterios"`
}

// PipelineResponse carries the final ranking plus the intermediate verdicts
// and any per-channel fetch failures, so the client can show each wizard
// step without re-running stages.
type PipelineResponse struct {
	Prioritized []SubnichoPrioritized `json:"priorizados"`
	Validated   []SubnichoValidated   `json:"validados"`
	Failures    []ChannelFailure      `json:"falhas"`
}

// MicroSubnichoRequest derives micro-subnichos from one channel.
type MicroSubnichoRequest struct {
	Channel  Channel `json:"canal"`
	Language string  `json:"idioma"`
	Limit    int     `json:"limite"`
}

// CompetitionRequest compares competition for a subnicho across languages.
type CompetitionRequest struct {
	Subnicho  string   `json:"subnicho"`
	Languages []string `json:"idiomas"`
	MaxVideos int      `json:"maxVideos"`
}

// CompetitionResponse pairs the sorted comparison list with the
// recommendation.
type CompetitionResponse struct {
	Comparisons    []ComparisonData    `json:"comparacoes"`
	Recommendation *RecommendationData `json:"recomendacao"`
}
