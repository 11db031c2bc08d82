// Package store provides PostgreSQL persistence for finalized evaluation
// results. Durable storage is the caller's responsibility; this adapter is
// what the CLI plugs into the session manager's completion event.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PankajPatil-95/AI-Interview-Mocker/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ResultRecord is one stored evaluation, as listed by ListRecent.
type ResultRecord struct {
	SessionID    uuid.UUID `json:"session_id"`
	CandidateID  string    `json:"candidate_id"`
	Role         string    `json:"role"`
	OverallScore int       `json:"overall_score"`
	GradeLabel   string    `json:"grade_label"`
	CreatedAt    time.Time `json:"created_at"`
}

// SaveResult stores a finalized evaluation. The full result is kept as a
// JSON document alongside the columns used for listing and filtering.
func (db *DB) SaveResult(ctx context.Context, result *types.EvaluationResult) error {
	content, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO interview_results (session_id, candidate_id, role, overall_score, grade_label, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.SessionID, result.CandidateID, result.Role,
		result.OverallScore, result.GradeLabel, content, result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save result for session %s: %w", result.SessionID, err)
	}
	return nil
}

// GetResult retrieves a stored evaluation by session ID.
// Returns nil without error when no row exists.
func (db *DB) GetResult(ctx context.Context, sessionID uuid.UUID) (*types.EvaluationResult, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM interview_results WHERE session_id = $1`,
		sessionID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result for session %s: %w", sessionID, err)
	}

	var result types.EvaluationResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation result: %w", err)
	}
	return &result, nil
}

// ListRecent retrieves recent evaluations for a candidate, newest first.
// An empty candidateID lists across all candidates.
func (db *DB) ListRecent(ctx context.Context, candidateID string, limit int) ([]ResultRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT session_id, candidate_id, role, overall_score, grade_label, created_at
		FROM interview_results`
	args := []any{}
	if candidateID != "" {
		query += ` WHERE candidate_id = $1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, candidateID, limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var records []ResultRecord
	for rows.Next() {
		var r ResultRecord
		if err := rows.Scan(&r.SessionID, &r.CandidateID, &r.Role, &r.OverallScore, &r.GradeLabel, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		records = append(records, r)
	}
	return records, nil
}

// DeleteResult removes a stored evaluation.
func (db *DB) DeleteResult(ctx context.Context, sessionID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM interview_results WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("result not found: %s", sessionID)
	}
	return nil
}
