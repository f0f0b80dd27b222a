package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testIndex() *Index {
	return Build(
		[]string{"Python", "SQL", "Power BI", "Machine Learning", "Docker"},
		map[string][]string{
			"power bi": {"powerbi"},
			"docker":   {"containers"},
		},
	)
}

func TestExtract_FindsExactSkills(t *testing.T) {
	got := Extract("Built dashboards in Power BI and Python", testIndex(), 4, false)
	assert.Equal(t, []string{"Power BI", "Python"}, got)
}

func TestExtract_MultiWordBeatsSubstring(t *testing.T) {
	// "machine learning" should not additionally surface any single-word
	// entry hiding inside it.
	got := Extract("machine learning engineer", testIndex(), 4, false)
	assert.Equal(t, []string{"Machine Learning"}, got)
}

func TestExtract_SynonymResolvesToCanonical(t *testing.T) {
	got := Extract("Deployed containers with powerbi dashboards", testIndex(), 4, false)
	assert.Equal(t, []string{"Docker", "Power BI"}, got)
}

func TestExtract_DeduplicatesByCanonical(t *testing.T) {
	// Surface form and synonym of the same skill appear once.
	got := Extract("docker docker containers", testIndex(), 4, false)
	assert.Equal(t, []string{"Docker"}, got)
}

func TestExtract_SortedCaseInsensitively(t *testing.T) {
	got := Extract("SQL then docker then Python", testIndex(), 4, false)
	assert.Equal(t, []string{"Docker", "Python", "SQL"}, got)
}

func TestExtract_NoMatches(t *testing.T) {
	assert.Empty(t, Extract("gardening and cooking", testIndex(), 4, false))
	assert.Empty(t, Extract("", testIndex(), 4, false))
}

func TestExtract_FuzzyRecoversTypo(t *testing.T) {
	// "pythonn" vs "python": ratio 2*6/13 = 0.923 >= 0.92.
	got := Extract("experienced pythonn developer", testIndex(), 4, true)
	assert.Equal(t, []string{"Python"}, got)
}

func TestExtract_FuzzyIgnoresShortTokens(t *testing.T) {
	got := Extract("sq and py", testIndex(), 4, true)
	assert.Empty(t, got)
}

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarityRatio("python", "python"))
	assert.Equal(t, 1.0, similarityRatio("", ""))
	assert.Equal(t, 0.0, similarityRatio("python", ""))
	assert.InDelta(t, 0.923, similarityRatio("pythonn", "python"), 0.001)
	assert.Less(t, similarityRatio("java", "python"), 0.3)
}
