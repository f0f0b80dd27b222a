package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTaxonomy(t *testing.T) {
	path := writeFile(t, t.TempDir(), "skills.txt", "Python\n\n  SQL  \nPower BI\n")

	skills, err := LoadTaxonomy(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL", "Power BI"}, skills)
}

func TestLoadTaxonomy_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "skills.txt", "\n\n")

	_, err := LoadTaxonomy(path)
	assert.Error(t, err)
}

func TestLoadTaxonomy_MissingFile(t *testing.T) {
	_, err := LoadTaxonomy("/nonexistent/skills.txt")
	assert.Error(t, err)
}
