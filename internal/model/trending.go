package model

// TrendingTopic is one entry in a regional trending snapshot.
type TrendingTopic struct {
	Title         string   `json:"title"`
	Value         int      `json:"value"`
	Category      string   `json:"category"`
	RelatedVideos []string `json:"relatedVideos,omitempty"`
}

// TrendingResponse mirrors the trending-topics contract: upstream failures
// still produce HTTP 200 with Source set to "fallback" and Error filled in.
type TrendingResponse struct {
	Topics []TrendingTopic `json:"topics"`
	Region string          `json:"region"`
	Source string          `json:"source"`
	Error  string          `json:"error,omitempty"`
}
