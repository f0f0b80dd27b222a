package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadResumeFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jane.txt", "Python developer")

	r := ReadResumeFile(path)
	assert.Equal(t, "jane.txt", r.CandidateID)
	assert.Equal(t, "Python developer", r.Text)
}

func TestReadResumeFile_HTMLStripped(t *testing.T) {
	dir := t.TempDir()
	html := `<html><head><style>p{color:red}</style></head>
<body><script>alert(1)</script><p>Python developer</p><p>SQL analyst</p></body></html>`
	path := writeFile(t, dir, "jane.html", html)

	r := ReadResumeFile(path)
	assert.Contains(t, r.Text, "Python developer")
	assert.Contains(t, r.Text, "SQL analyst")
	assert.NotContains(t, r.Text, "alert(1)")
	assert.NotContains(t, r.Text, "color:red")
	assert.NotContains(t, r.Text, "<p>")
}

func TestReadResumeFile_MissingFileDegradesToEmpty(t *testing.T) {
	r := ReadResumeFile("/nonexistent/resume.txt")
	assert.Equal(t, "resume.txt", r.CandidateID)
	assert.Equal(t, "", r.Text)
}

func TestReadResumeDir_LexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "second")
	writeFile(t, dir, "a.txt", "first")
	writeFile(t, dir, "c.txt", "third")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	resumes, err := ReadResumeDir(dir)
	require.NoError(t, err)
	require.Len(t, resumes, 3)

	assert.Equal(t, "a.txt", resumes[0].CandidateID)
	assert.Equal(t, "b.txt", resumes[1].CandidateID)
	assert.Equal(t, "c.txt", resumes[2].CandidateID)
}

func TestReadResumeDir_Empty(t *testing.T) {
	_, err := ReadResumeDir(t.TempDir())
	assert.Error(t, err)
}

func TestReadResumeDir_Missing(t *testing.T) {
	_, err := ReadResumeDir("/nonexistent/dir")
	assert.Error(t, err)
}
