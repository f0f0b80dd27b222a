package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractGPA_ValueBeforeLabel(t *testing.T) {
	got := ExtractGPA("Scored 8.91 CGPA in B.Tech")
	require.NotNil(t, got)
	assert.Equal(t, 8.91, *got)
}

func TestExtractGPA_LabelBeforeValue(t *testing.T) {
	got := ExtractGPA("CGPA: 7.43")
	require.NotNil(t, got)
	assert.Equal(t, 7.43, *got)
}

func TestExtractGPA_CascadeOrder(t *testing.T) {
	// A labelled CGPA wins over a bare x/10 mention elsewhere in the text.
	got := ExtractGPA("CGPA: 7.43 (12th grade: 8.5/10)")
	require.NotNil(t, got)
	assert.Equal(t, 7.43, *got)
}

func TestExtractGPA_SlashTenFallback(t *testing.T) {
	got := ExtractGPA("Graduated with 8.5/10")
	require.NotNil(t, got)
	assert.Equal(t, 8.5, *got)
}

func TestExtractGPA_RejectsOutOfRange(t *testing.T) {
	assert.Nil(t, ExtractGPA("GPA: 0.0"))
}

func TestExtractGPA_NoMention(t *testing.T) {
	assert.Nil(t, ExtractGPA("Python developer with SQL experience"))
	assert.Nil(t, ExtractGPA(""))
}
