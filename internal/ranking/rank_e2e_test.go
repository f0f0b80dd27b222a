package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/profile"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

func TestRank_EndToEnd(t *testing.T) {
	index := skills.Build([]string{"Python", "SQL", "AWS"}, nil)
	engine := NewEngine(index, &stubEmbedder{})

	jd := "Looking for Python, SQL, and AWS experience"
	resume := "3 years of Python and SQL, AWS certified, CGPA 8.2/10, June 2022"

	p := profile.Extract("jane.txt", resume, index)
	require.NotNil(t, p.CGPA)
	assert.InDelta(t, 8.2, *p.CGPA, 1e-9)
	assert.Equal(t, []string{"AWS", "Python", "SQL"}, p.SkillsFound)

	run := func() float64 {
		ranked, err := engine.Rank(context.Background(), []types.CandidateProfile{p}, jd)
		require.NoError(t, err)
		require.Len(t, ranked.Results, 1)

		row := ranked.Results[0]
		assert.Equal(t, []string{"AWS", "Python", "SQL"}, ranked.RequiredSkills)
		assert.Equal(t, 1.0, row.SkillCoverage)
		assert.Empty(t, row.JDMissingSkills)
		assert.InDelta(t, 0.82, row.CGPAScore, 1e-9)
		return row.FinalScore
	}

	// Same inputs, same backend: the final score is reproducible.
	assert.Equal(t, run(), run())
}
