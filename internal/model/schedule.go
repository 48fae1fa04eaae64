package model

import "time"

// ScheduleRecommendation is one subnicho the scheduler round-robins over.
type ScheduleRecommendation struct {
	MicroSubnicho string `json:"microsubnicho"`
}

// ScheduleRequest is the API request body for building a publication calendar.
type ScheduleRequest struct {
	Recommendations []ScheduleRecommendation `json:"recomendacoes"`
	Cadence         string                   `json:"frequencia"`
	Cycles          int                      `json:"ciclos"`
	Language        string                   `json:"idioma,omitempty"`
}

// PublicationScheduleEntry is one slot in the generated calendar.
type PublicationScheduleEntry struct {
	Date     time.Time `json:"dataPublicacao"`
	Subnicho string    `json:"microsubnicho"`
	Title    string    `json:"tituloSugerido"`
}
