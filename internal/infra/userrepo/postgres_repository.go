package userrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/culture-compass/internal/domain/user"
)

// PostgresRepository persists user preferences in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Upsert inserts or replaces the preferences row.
func (r *PostgresRepository) Upsert(ctx context.Context, userID int64, preferences []string) (user.Preferences, error) {
	if preferences == nil {
		preferences = []string{}
	}
	payload, err := json.Marshal(preferences)
	if err != nil {
		return user.Preferences{}, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO user_preferences (user_id, preferences, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET preferences = EXCLUDED.preferences, updated_at = NOW()
		RETURNING user_id, preferences, updated_at
	`, userID, payload)
	return scanPreferences(row)
}

// Get fetches preferences by user ID.
func (r *PostgresRepository) Get(ctx context.Context, userID int64) (user.Preferences, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, preferences, updated_at
		FROM user_preferences
		WHERE user_id = $1
		LIMIT 1
	`, userID)
	if err != nil {
		return user.Preferences{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return user.Preferences{}, false, rows.Err()
	}
	prefs, err := scanPreferences(rows)
	if err != nil {
		return user.Preferences{}, false, err
	}
	return prefs, true, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreferences(row rowScanner) (user.Preferences, error) {
	var (
		prefs   user.Preferences
		raw     []byte
		updated time.Time
	)
	if err := row.Scan(&prefs.UserID, &raw, &updated); err != nil {
		return user.Preferences{}, err
	}
	prefs.Preferences = []string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &prefs.Preferences); err != nil {
			return user.Preferences{}, err
		}
	}
	prefs.UpdatedAt = updated.UTC()
	return prefs, nil
}

var _ user.Repository = (*PostgresRepository)(nil)
