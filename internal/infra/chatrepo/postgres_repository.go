package chatrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/culture-compass/internal/domain/chat"
)

// PostgresRepository persists chat exchanges in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Record inserts a chat_messages row.
func (r *PostgresRepository) Record(ctx context.Context, userID int64, message, response string) (chat.Message, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO chat_messages (user_id, message, response)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, message, response, created_at
	`, userID, message, response)
	return scanMessage(row)
}

// ListByUser returns a user's exchanges in insertion order.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]chat.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, message, response, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]chat.Message, 0)
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (chat.Message, error) {
	var msg chat.Message
	var created time.Time
	if err := row.Scan(&msg.ID, &msg.UserID, &msg.Message, &msg.Response, &created); err != nil {
		return chat.Message{}, err
	}
	msg.Timestamp = created.UTC()
	return msg, nil
}

var _ chat.Repository = (*PostgresRepository)(nil)
