package db

import (
	"context"
	"fmt"
)

// Migrate creates the tables the ranker needs if they do not exist yet.
// Safe to call on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scoring_runs (
			id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			job_description TEXT NOT NULL,
			candidate_count INT NOT NULL,
			status          TEXT NOT NULL,
			required_skills JSONB,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at    TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS scoring_results (
			id           BIGSERIAL PRIMARY KEY,
			run_id       UUID NOT NULL REFERENCES scoring_runs(id) ON DELETE CASCADE,
			position     INT NOT NULL,
			candidate_id TEXT NOT NULL,
			final_score  DOUBLE PRECISION NOT NULL,
			result       JSONB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scoring_results_run ON scoring_results(run_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
