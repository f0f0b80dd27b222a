package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevel_OrdinalRank(t *testing.T) {
	assert.Equal(t, 3, EducationPhD.OrdinalRank())
	assert.Equal(t, 2, EducationMasters.OrdinalRank())
	assert.Equal(t, 1, EducationBachelors.OrdinalRank())
	assert.Equal(t, 0, EducationOther.OrdinalRank())
	assert.Equal(t, 0, EducationLevel("bogus").OrdinalRank())
}

func TestCandidateProfile_TotalSkillsFound(t *testing.T) {
	p := CandidateProfile{SkillsFound: []string{"Python", "SQL"}}
	assert.Equal(t, 2, p.TotalSkillsFound())
	assert.Equal(t, 0, (&CandidateProfile{}).TotalSkillsFound())
}
