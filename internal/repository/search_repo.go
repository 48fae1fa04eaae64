package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

// ErrVersionConflict is returned when an update carries a stale version:
// another session modified the search since it was read. Callers should
// re-read and retry instead of overwriting.
var ErrVersionConflict = errors.New("saved search was modified by another session")

// SearchRepo persists saved searches. Updates are compare-and-swap on the
// version column so concurrent sessions cannot lose each other's writes.
type SearchRepo struct {
	pool *pgxpool.Pool
}

func NewSearchRepo(pool *pgxpool.Pool) *SearchRepo {
	return &SearchRepo{pool: pool}
}

// NewID returns a fresh ULID for a saved search.
func NewID() string {
	return ulid.Make().String()
}

// Create inserts a new saved search and returns it with ID, version and
// timestamps filled in.
func (r *SearchRepo) Create(ctx context.Context, name string, params model.SearchParams, ownerID string) (*model.SavedSearch, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	s := &model.SavedSearch{
		ID:      NewID(),
		Name:    name,
		Params:  params,
		OwnerID: ownerID,
		Version: 1,
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO saved_searches (id, name, params, owner_id, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, NOW(), NOW())
		RETURNING created_at, updated_at`,
		s.ID, s.Name, paramsJSON, s.OwnerID).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns one saved search by ID, scoped to its owner.
func (r *SearchRepo) Get(ctx context.Context, id, ownerID string) (*model.SavedSearch, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, params, owner_id, version, created_at, updated_at
		FROM saved_searches
		WHERE id = $1 AND owner_id = $2`,
		id, ownerID)
	return scanSearch(row)
}

// List returns all saved searches owned by ownerID, newest first.
func (r *SearchRepo) List(ctx context.Context, ownerID string) ([]model.SavedSearch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, params, owner_id, version, created_at, updated_at
		FROM saved_searches
		WHERE owner_id = $1
		ORDER BY created_at DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	searches := []model.SavedSearch{}
	for rows.Next() {
		s, err := scanSearch(rows)
		if err != nil {
			return nil, err
		}
		searches = append(searches, *s)
	}
	return searches, rows.Err()
}

// Update rewrites name and params if and only if the stored version still
// matches expectedVersion. On success the version is bumped.
func (r *SearchRepo) Update(ctx context.Context, id, ownerID string, expectedVersion int64, name string, params model.SearchParams) (*model.SavedSearch, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE saved_searches
		SET name = $1, params = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND owner_id = $4 AND version = $5
		RETURNING id, name, params, owner_id, version, created_at, updated_at`,
		name, paramsJSON, id, ownerID, expectedVersion)

	s, err := scanSearch(row)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// No row matched: either the search is gone or the version is stale.
	var exists bool
	checkErr := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM saved_searches WHERE id = $1 AND owner_id = $2)`,
		id, ownerID).Scan(&exists)
	if checkErr != nil {
		return nil, checkErr
	}
	if exists {
		return nil, ErrVersionConflict
	}
	return nil, pgx.ErrNoRows
}

// Delete removes a saved search. Returns pgx.ErrNoRows when nothing matched.
func (r *SearchRepo) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM saved_searches WHERE id = $1 AND owner_id = $2`,
		id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanSearch(row pgx.Row) (*model.SavedSearch, error) {
	var s model.SavedSearch
	var paramsJSON []byte
	err := row.Scan(&s.ID, &s.Name, &paramsJSON, &s.OwnerID, &s.Version, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(paramsJSON, &s.Params); err != nil {
		return nil, err
	}
	return &s, nil
}
