package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 9876543210
B.Tech in Computer Science, CGPA: 8.12

Data Science Intern, Jun 2024 to Aug 2024
Built dashboards in Power BI and wrote Python with SQL`

func profileTestIndex() *skills.Index {
	return skills.Build(
		[]string{"Python", "SQL", "Power BI"},
		map[string][]string{"power bi": {"powerbi"}},
	)
}

func TestExtract_FullResume(t *testing.T) {
	p := Extract("jane.pdf", sampleResume, profileTestIndex())

	assert.Equal(t, "jane.pdf", p.CandidateID)
	assert.Equal(t, sampleResume, p.RawText)
	assert.NotContains(t, p.CleanText, "\n")

	assert.Equal(t, 3, p.MonthsExperience)
	assert.Equal(t, 0.25, p.YearsExperience)
	assert.Equal(t, types.EducationBachelors, p.Education)
	assert.Equal(t, "jane.doe@example.com", p.Email)
	assert.Equal(t, "9876543210", p.Phone)
	assert.Equal(t, []string{"Power BI", "Python", "SQL"}, p.SkillsFound)
	assert.Equal(t, 0.9, p.Recency)
	require.NotNil(t, p.CGPA)
	assert.Equal(t, 8.12, *p.CGPA)
}

func TestExtract_EmptyText(t *testing.T) {
	p := Extract("empty.pdf", "", profileTestIndex())

	assert.Equal(t, "empty.pdf", p.CandidateID)
	assert.Equal(t, 0, p.MonthsExperience)
	assert.Equal(t, types.EducationOther, p.Education)
	assert.Empty(t, p.SkillsFound)
	assert.Equal(t, 0.6, p.Recency)
	assert.Nil(t, p.CGPA)
}

func TestExtractAll_PreservesOrder(t *testing.T) {
	ids := []string{"c.pdf", "a.pdf", "b.pdf"}
	texts := []string{"Python developer", "SQL analyst", ""}

	profiles, err := ExtractAll(context.Background(), ids, texts, profileTestIndex())
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	for i, id := range ids {
		assert.Equal(t, id, profiles[i].CandidateID)
	}
	assert.Equal(t, []string{"Python"}, profiles[0].SkillsFound)
	assert.Equal(t, []string{"SQL"}, profiles[1].SkillsFound)
	assert.Empty(t, profiles[2].SkillsFound)
}
