package skills

import (
	"github.com/jonathan/resume-ranker/internal/parsing"
)

// OrderJDFirst returns the found skills with job-description matches moved to
// the front, preserving relative order within each group. Display-only: set
// membership is untouched. requiredSet holds normalized skill forms.
func OrderJDFirst(found []string, requiredSet map[string]bool) []string {
	ordered := make([]string, 0, len(found))
	for _, s := range found {
		if requiredSet[parsing.NormalizeForMatch(s)] {
			ordered = append(ordered, s)
		}
	}
	for _, s := range found {
		if !requiredSet[parsing.NormalizeForMatch(s)] {
			ordered = append(ordered, s)
		}
	}
	return ordered
}
