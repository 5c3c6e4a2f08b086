package itineraryrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/culture-compass/internal/domain/itinerary"
)

// PostgresRepository persists itineraries in Postgres; items live in a jsonb column.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create inserts an itineraries row.
func (r *PostgresRepository) Create(ctx context.Context, it itinerary.Itinerary) (itinerary.Itinerary, error) {
	payload, err := encodeItems(it.Items)
	if err != nil {
		return itinerary.Itinerary{}, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO itineraries (user_id, name, items)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, items, created_at
	`, it.UserID, it.Name, payload)
	return scanItinerary(row)
}

// Get fetches by primary key.
func (r *PostgresRepository) Get(ctx context.Context, id int64) (itinerary.Itinerary, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, items, created_at
		FROM itineraries
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return itinerary.Itinerary{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return itinerary.Itinerary{}, false, rows.Err()
	}
	it, err := scanItinerary(rows)
	if err != nil {
		return itinerary.Itinerary{}, false, err
	}
	return it, true, rows.Err()
}

// ListByUser returns a user's itineraries ordered by id.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]itinerary.Itinerary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, items, created_at
		FROM itineraries
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]itinerary.Itinerary, 0)
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// UpdateItems replaces the jsonb item list.
func (r *PostgresRepository) UpdateItems(ctx context.Context, id int64, items []itinerary.Item) (bool, error) {
	payload, err := encodeItems(items)
	if err != nil {
		return false, err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE itineraries
		SET items = $2
		WHERE id = $1
	`, id, payload)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItinerary(row rowScanner) (itinerary.Itinerary, error) {
	var (
		it      itinerary.Itinerary
		raw     []byte
		created time.Time
	)
	if err := row.Scan(&it.ID, &it.UserID, &it.Name, &raw, &created); err != nil {
		return itinerary.Itinerary{}, err
	}
	items, err := decodeItems(raw)
	if err != nil {
		return itinerary.Itinerary{}, err
	}
	it.Items = items
	it.CreatedAt = created.UTC()
	return it, nil
}

func encodeItems(items []itinerary.Item) ([]byte, error) {
	if items == nil {
		items = []itinerary.Item{}
	}
	return json.Marshal(items)
}

func decodeItems(raw []byte) ([]itinerary.Item, error) {
	items := []itinerary.Item{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []itinerary.Item{}
	}
	return items, nil
}

var _ itinerary.Repository = (*PostgresRepository)(nil)
