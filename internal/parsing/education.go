package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// educationPatterns is an ordered pattern table: the first matching entry
// wins, so every bachelor pattern is tried before any master pattern.
// The parser never emits PhD; the scoring scale supports it regardless.
var educationPatterns = []struct {
	re    *regexp.Regexp
	level types.EducationLevel
}{
	{regexp.MustCompile(`b\.?\s*tech`), types.EducationBachelors},
	{regexp.MustCompile(`b\s*tech`), types.EducationBachelors},
	{regexp.MustCompile(`b\.?\s*e`), types.EducationBachelors},
	{regexp.MustCompile(`bachelor`), types.EducationBachelors},
	{regexp.MustCompile(`undergraduate`), types.EducationBachelors},
	{regexp.MustCompile(`ug program`), types.EducationBachelors},
	{regexp.MustCompile(`graduation`), types.EducationBachelors},
	{regexp.MustCompile(`m\.?\s*tech`), types.EducationMasters},
	{regexp.MustCompile(`m\s*tech`), types.EducationMasters},
	{regexp.MustCompile(`m\.?\s*sc`), types.EducationMasters},
	{regexp.MustCompile(`master`), types.EducationMasters},
	{regexp.MustCompile(`post\s*graduate`), types.EducationMasters},
	{regexp.MustCompile(`pg program`), types.EducationMasters},
}

// ExtractEducation returns the first education level whose pattern matches
// the lowercased text, or Other when nothing matches.
func ExtractEducation(text string) types.EducationLevel {
	text = strings.ToLower(text)
	for _, p := range educationPatterns {
		if p.re.MatchString(text) {
			return p.level
		}
	}
	return types.EducationOther
}
