package model

// TitleVariation is a generated title with its metadata tags. Translations
// holds the same framing rendered in the other supported languages.
type TitleVariation struct {
	Text         string            `json:"titulo"`
	Emotion      string            `json:"emocao"`
	Saturation   string            `json:"saturacao"`
	Language     string            `json:"idioma"`
	Translations map[string]string `json:"traducoes,omitempty"`
}

// TitleRequest is the API request body for title generation.
type TitleRequest struct {
	Title      string   `json:"titulo"`
	Keywords   []string `json:"palavrasChave,omitempty"`
	Language   string   `json:"idioma"`
	Emotion    string   `json:"emocao,omitempty"`
	Count      int      `json:"quantidade"`
	Structured bool     `json:"estruturado,omitempty"`
}

// TitleResponse is the API response for title generation.
type TitleResponse struct {
	Titles     []string         `json:"titulos,omitempty"`
	Variations []TitleVariation `json:"variacoes,omitempty"`
}
