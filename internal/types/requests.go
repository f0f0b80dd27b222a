package types

import (
	"github.com/go-playground/validator/v10"
)

// RankRequest represents a scoring run request: one job description plus one
// uploaded resume text per candidate, in upload order.
type RankRequest struct {
	JobDescription string   `json:"job_description" validate:"required,min=1"`
	CandidateIDs   []string `json:"candidate_ids" validate:"required,min=1"`
	ResumeTexts    []string `json:"resume_texts" validate:"required,min=1"`
}

// Validate validates the RankRequest using the validator. Invalid runs are
// rejected before any extraction or ranking work begins.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	if err := validate.StructPartial(r, "JobDescription"); err != nil {
		return &ErrMissingInput{Input: "job_description"}
	}
	if len(r.CandidateIDs) == 0 || len(r.ResumeTexts) == 0 {
		return &ErrMissingInput{Input: "resumes"}
	}
	if len(r.CandidateIDs) != len(r.ResumeTexts) {
		return &ErrMissingInput{Input: "resumes (candidate_ids and resume_texts length mismatch)"}
	}
	return nil
}
