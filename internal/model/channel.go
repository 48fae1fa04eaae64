package model

import "time"

// Channel is a YouTube channel snapshot used as raw input for the
// subnicho pipeline. Immutable after extraction.
type Channel struct {
	ChannelID    string    `json:"channelId"`
	Name         string    `json:"nome"`
	CreatedAt    time.Time `json:"dataCriacao"`
	TotalVideos  int64     `json:"totalVideos"`
	Subscribers  int64     `json:"inscritos"`
	RecentTitles []string  `json:"titulosRecentes"`
}

// ChannelFailure records a single channel whose detail fetch failed.
// Failures never abort a batch; they are reported alongside the successes.
type ChannelFailure struct {
	ChannelID string `json:"channelId"`
	Name      string `json:"nome,omitempty"`
	Reason    string `json:"motivo"`
}
