package db

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ScoringRun is the stored record of one ranking run.
type ScoringRun struct {
	ID             uuid.UUID  `json:"id"`
	JobDescription string     `json:"job_description"`
	CandidateCount int        `json:"candidate_count"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
