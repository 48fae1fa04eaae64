package model

// VideoResult is the fixed projection exported as CSV rows.
type VideoResult struct {
	Title        string  `json:"titulo"`
	ChannelName  string  `json:"canal"`
	Views        int64   `json:"visualizacoes"`
	Language     string  `json:"idioma"`
	ViralScore   float64 `json:"pontuacaoViral"`
	EstimatedCPM float64 `json:"cpmEstimado"`
	PublishedAt  string  `json:"publicadoEm"`
	URL          string  `json:"url"`
}

// ExportRequest is the API request body for CSV export.
type ExportRequest struct {
	Results []VideoResult `json:"resultados"`
}
