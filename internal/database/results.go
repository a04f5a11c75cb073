package database

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
)

const DefaultResultsLimit = 50

const schema = `
CREATE TABLE IF NOT EXISTS solve_results (
	id          TEXT        NOT NULL,
	day         INTEGER     NOT NULL,
	part        INTEGER     NOT NULL,
	variant     TEXT        NOT NULL DEFAULT '',
	answer      TEXT        NOT NULL DEFAULT '',
	status      TEXT        NOT NULL,
	error       TEXT        NOT NULL DEFAULT '',
	cached      BOOLEAN     NOT NULL DEFAULT FALSE,
	input_bytes INTEGER     NOT NULL,
	duration_ns BIGINT      NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS solve_results_created_at_idx ON solve_results (created_at DESC);
`

// Migrate creates the result history table.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate solve_results: %w", err)
	}
	return nil
}

func (db *DB) SaveResult(ctx context.Context, result models.SolveResult) error {
	query := `
	INSERT INTO solve_results
		(id, day, part, variant, answer, status, error, cached, input_bytes, duration_ns, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	createdAt := result.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := db.Pool.Exec(ctx, query,
		result.ID,
		result.Day,
		result.Part,
		result.Variant,
		result.Answer,
		string(result.Status),
		result.Error,
		result.Cached,
		result.InputBytes,
		result.Duration.Nanoseconds(),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save result %s: %w", result.ID, err)
	}

	return nil
}

// RecentResults returns the newest results first.
func (db *DB) RecentResults(ctx context.Context, limit int) ([]models.SolveResult, error) {
	if limit <= 0 {
		limit = DefaultResultsLimit
	}

	query := `
	SELECT id, day, part, variant, answer, status, error, cached, input_bytes, duration_ns, created_at
	FROM solve_results
	ORDER BY created_at DESC
	LIMIT $1`

	rows, err := db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to query results: %w", err)
	}

	defer rows.Close()

	results := []models.SolveResult{}
	for rows.Next() {
		var (
			result     models.SolveResult
			status     string
			durationNs int64
		)

		err := rows.Scan(
			&result.ID,
			&result.Day,
			&result.Part,
			&result.Variant,
			&result.Answer,
			&status,
			&result.Error,
			&result.Cached,
			&result.InputBytes,
			&durationNs,
			&result.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		result.Status = models.Status(status)
		result.Duration = time.Duration(durationNs)
		results = append(results, result)
	}

	// Rows errors catch
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return results, nil
}
