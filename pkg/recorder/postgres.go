package recorder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS matches (
	match_id TEXT PRIMARY KEY,
	started_at BIGINT NOT NULL
);
CREATE TABLE IF NOT EXISTS rounds (
	match_id TEXT NOT NULL,
	round INTEGER NOT NULL,
	payload BYTEA NOT NULL,
	PRIMARY KEY (match_id, round)
);
`

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to a Postgres match journal. The caller is
// responsible for calling Close on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if _, err := conn.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) CreateMatch(ctx context.Context, matchID string, startedAt int64) error {
	q := `
	INSERT INTO matches (match_id, started_at) VALUES ($1, $2);
	`
	if _, err := r.conn.Exec(ctx, q, matchID, startedAt); err != nil {
		return fmt.Errorf("failed to insert match: %v", err)
	}

	return nil
}

func (r *PostgresRepository) SaveRound(ctx context.Context, matchID string, round int, payload []byte) error {
	q := `
	INSERT INTO rounds (match_id, round, payload) VALUES ($1, $2, $3)
	ON CONFLICT (match_id, round) DO UPDATE SET payload = $3;
	`
	if _, err := r.conn.Exec(ctx, q, matchID, round, payload); err != nil {
		return fmt.Errorf("failed to insert round: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadRound(ctx context.Context, matchID string, round int) ([]byte, error) {
	q := `
	SELECT payload FROM rounds WHERE match_id = $1 AND round = $2;
	`
	var payload []byte
	if err := r.conn.QueryRow(ctx, q, matchID, round).Scan(&payload); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan round: %v", err)
	}

	return payload, nil
}
