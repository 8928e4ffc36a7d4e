package recorder

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS matches (
	match_id TEXT PRIMARY KEY,
	started_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS rounds (
	match_id TEXT NOT NULL,
	round INTEGER NOT NULL,
	payload BLOB NOT NULL,
	PRIMARY KEY (match_id, round)
);
`

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) a SQLite match journal at the
// given path.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateMatch(ctx context.Context, matchID string, startedAt int64) error {
	q := `
	INSERT INTO matches (match_id, started_at) VALUES (?, ?);
	`
	if _, err := r.db.ExecContext(ctx, q, matchID, startedAt); err != nil {
		return fmt.Errorf("failed to insert match: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) SaveRound(ctx context.Context, matchID string, round int, payload []byte) error {
	q := `
	INSERT OR REPLACE INTO rounds (match_id, round, payload)
	VALUES (?, ?, ?);
	`
	if _, err := r.db.ExecContext(ctx, q, matchID, round, payload); err != nil {
		return fmt.Errorf("failed to insert round: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadRound(ctx context.Context, matchID string, round int) ([]byte, error) {
	q := `
	SELECT payload FROM rounds WHERE match_id = ? AND round = ?;
	`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, q, matchID, round).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan round: %v", err)
	}

	return payload, nil
}
