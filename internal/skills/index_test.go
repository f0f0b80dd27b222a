package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_NormalizesTaxonomyEntries(t *testing.T) {
	idx := Build([]string{"Power BI", "Scikit-Learn"}, nil)

	canonical, ok := idx.Lookup("power bi")
	assert.True(t, ok)
	assert.Equal(t, "Power BI", canonical)

	canonical, ok = idx.Lookup("scikit-learn")
	assert.True(t, ok)
	assert.Equal(t, "Scikit-Learn", canonical)
}

func TestBuild_SynonymsMapToTaxonomySpelling(t *testing.T) {
	idx := Build([]string{"Power BI"}, map[string][]string{
		"power bi": {"powerbi", "power-bi"},
	})

	for _, alt := range []string{"powerbi", "power-bi"} {
		canonical, ok := idx.Lookup(alt)
		assert.True(t, ok, alt)
		assert.Equal(t, "Power BI", canonical)
	}
}

func TestBuild_SynonymsGatedByTaxonomy(t *testing.T) {
	// "kubernetes" is not in the taxonomy, so its alternates never enter
	// the index.
	idx := Build([]string{"Docker"}, map[string][]string{
		"kubernetes": {"k8s"},
	})

	_, ok := idx.Lookup("k8s")
	assert.False(t, ok)
	assert.Equal(t, 1, idx.Len())
}

func TestBuild_SkipsEmptyEntries(t *testing.T) {
	idx := Build([]string{"SQL", "   ", "!!!"}, nil)
	assert.Equal(t, 1, idx.Len())
}

func TestBuild_Deterministic(t *testing.T) {
	taxonomy := []string{"Python", "SQL", "Docker"}
	synonyms := map[string][]string{
		"docker": {"containers", "containerization"},
		"python": {"py"},
	}

	a := Build(taxonomy, synonyms)
	b := Build(taxonomy, synonyms)
	assert.Equal(t, a.keys, b.keys)
}
