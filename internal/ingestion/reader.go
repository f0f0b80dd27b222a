// Package ingestion provides document-to-text collaborators: reading uploaded
// resume files into plain text and loading the skill taxonomy.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Resume is one uploaded document reduced to an identifier and plain text.
// Text may be empty when extraction failed; the profile extractor treats that
// as a normal degraded input, not an error.
type Resume struct {
	CandidateID string
	Text        string
}

// ReadResumeFile converts one file into (identifier, text). The identifier is
// the file's base name, unique per upload directory. HTML files are reduced
// to their visible text; anything else is read as plain text. Unreadable or
// corrupt files yield empty text rather than an error.
func ReadResumeFile(path string) Resume {
	id := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return Resume{CandidateID: id}
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text = extractHTMLText(text)
	}

	return Resume{CandidateID: id, Text: text}
}

// ReadResumeDir reads every regular file in a directory as a resume, in
// lexical filename order so upload order is stable across runs.
func ReadResumeDir(dir string) ([]Resume, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no resume files found in %s", dir)
	}

	resumes := make([]Resume, 0, len(names))
	for _, name := range names {
		resumes = append(resumes, ReadResumeFile(filepath.Join(dir, name)))
	}
	return resumes, nil
}

// extractHTMLText strips markup and returns the document's visible text.
// Returns the input unchanged if it does not parse as HTML.
func extractHTMLText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
		sb.WriteString(" ")
	})
	if sb.Len() == 0 {
		return doc.Text()
	}
	return sb.String()
}
