package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ranker/internal/types"
)

// CreateRun creates a new scoring run record and returns its ID.
func (db *DB) CreateRun(ctx context.Context, jobDescription string, candidateCount int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO scoring_runs (job_description, candidate_count, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		jobDescription, candidateCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a scoring run as completed or failed.
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE scoring_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveResults stores the full ranked table for a run, one row per candidate
// in rank order. Raw resume text is not persisted.
func (db *DB) SaveResults(ctx context.Context, runID uuid.UUID, ranked *types.RankedCandidates) error {
	requiredJSON, err := json.Marshal(ranked.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}
	if _, err := db.pool.Exec(ctx,
		`UPDATE scoring_runs SET required_skills = $1 WHERE id = $2`,
		requiredJSON, runID,
	); err != nil {
		return fmt.Errorf("failed to save required skills: %w", err)
	}

	for position, row := range ranked.Results {
		stored := row
		stored.RawText = ""
		stored.CleanText = ""
		rowJSON, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("failed to marshal result for %s: %w", row.CandidateID, err)
		}

		_, err = db.pool.Exec(ctx,
			`INSERT INTO scoring_results (run_id, position, candidate_id, final_score, result)
			 VALUES ($1, $2, $3, $4, $5)`,
			runID, position, row.CandidateID, row.FinalScore, rowJSON,
		)
		if err != nil {
			return fmt.Errorf("failed to save result for %s: %w", row.CandidateID, err)
		}
	}

	return nil
}

// ListRuns returns scoring runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]ScoringRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_description, candidate_count, status, created_at, completed_at
		 FROM scoring_runs
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []ScoringRun
	for rows.Next() {
		var r ScoringRun
		if err := rows.Scan(&r.ID, &r.JobDescription, &r.CandidateCount, &r.Status, &r.CreatedAt, &r.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunResults reconstructs the ranked table for a stored run.
func (db *DB) GetRunResults(ctx context.Context, runID uuid.UUID) (*types.RankedCandidates, error) {
	var requiredJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(required_skills, '[]'::jsonb) FROM scoring_runs WHERE id = $1`,
		runID,
	).Scan(&requiredJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	ranked := &types.RankedCandidates{}
	if err := json.Unmarshal(requiredJSON, &ranked.RequiredSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT result FROM scoring_results WHERE run_id = $1 ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load results for run %s: %w", runID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rowJSON []byte
		if err := rows.Scan(&rowJSON); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		var result types.RankingResult
		if err := json.Unmarshal(rowJSON, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		ranked.Results = append(ranked.Results, result)
	}

	return ranked, rows.Err()
}
