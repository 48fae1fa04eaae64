package model

import "time"

// SearchParams are the pipeline inputs a user can save and re-run later.
type SearchParams struct {
	Niche       string   `json:"nicho"`
	Language    string   `json:"idioma"`
	MaxChannels int      `json:"maxCanais"`
	Criteria    Criteria `json:"criterios"`
}

// SavedSearch is a named, persisted search owned by one user. Version is
// bumped on every update and checked on write (compare-and-swap) so two
// concurrent sessions cannot silently overwrite each other.
type SavedSearch struct {
	ID        string       `json:"id"`
	Name      string       `json:"nome"`
	Params    SearchParams `json:"parametros"`
	OwnerID   string       `json:"ownerId"`
	Version   int64        `json:"versao"`
	CreatedAt time.Time    `json:"criadoEm"`
	UpdatedAt time.Time    `json:"atualizadoEm"`
}
