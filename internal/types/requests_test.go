package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRequest_Validate(t *testing.T) {
	req := &RankRequest{
		JobDescription: "Python engineer",
		CandidateIDs:   []string{"a.pdf"},
		ResumeTexts:    []string{"python developer"},
	}
	assert.NoError(t, req.Validate())
}

func TestRankRequest_Validate_MissingJobDescription(t *testing.T) {
	req := &RankRequest{
		CandidateIDs: []string{"a.pdf"},
		ResumeTexts:  []string{"text"},
	}

	err := req.Validate()
	var missing *ErrMissingInput
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "job_description", missing.Input)
}

func TestRankRequest_Validate_MissingResumes(t *testing.T) {
	req := &RankRequest{JobDescription: "Python engineer"}

	err := req.Validate()
	var missing *ErrMissingInput
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "resumes", missing.Input)
}

func TestRankRequest_Validate_LengthMismatch(t *testing.T) {
	req := &RankRequest{
		JobDescription: "Python engineer",
		CandidateIDs:   []string{"a.pdf", "b.pdf"},
		ResumeTexts:    []string{"only one"},
	}

	err := req.Validate()
	var missing *ErrMissingInput
	require.ErrorAs(t, err, &missing)
}
