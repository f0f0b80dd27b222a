package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/types"
)

// highlight wraps a skill the job description requires so renderers can
// distinguish it from the candidate's other skills.
const (
	highlightOpen  = "<span style='color:#1a7f37;font-weight:600'>"
	highlightClose = "</span>"
)

// Explain renders a deterministic natural-language breakdown of one ranked
// candidate: every sub-score in fixed order, then the skills present (job
// matches highlighted) and the required skills still missing. Pure
// formatting, no I/O.
func Explain(row *types.RankingResult) string {
	jdSet := make(map[string]bool, len(row.JDFoundSkills))
	for _, s := range row.JDFoundSkills {
		jdSet[parsing.NormalizeForMatch(s)] = true
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Similarity to Job Description: %.2f", row.JDSimilarity))
	parts = append(parts, fmt.Sprintf("Skill Coverage: %.2f", row.SkillCoverage))
	parts = append(parts, fmt.Sprintf("Internship Experience: %d months (%.2f years)", row.MonthsExperience, row.YearsExperience))
	parts = append(parts, fmt.Sprintf("Education Level Score: %.2f", row.EduScore))
	parts = append(parts, fmt.Sprintf("Recency Score: %.2f", row.RecencyScore))
	if row.CGPA != nil {
		parts = append(parts, fmt.Sprintf("CGPA: %.2f", *row.CGPA))
	} else {
		parts = append(parts, "CGPA not mentioned.")
	}

	view := make([]string, 0, len(row.SkillsFound))
	for _, s := range row.SkillsFound {
		if jdSet[parsing.NormalizeForMatch(s)] {
			view = append(view, highlightOpen+s+highlightClose)
		} else {
			view = append(view, s)
		}
	}

	parts = append(parts, "")
	parts = append(parts, "Strengths (Skills Present):")
	if len(view) > 0 {
		parts = append(parts, strings.Join(view, ", "))
	} else {
		parts = append(parts, "None")
	}

	parts = append(parts, "")
	parts = append(parts, "Skill Gaps (Missing Skills for Role):")
	if len(row.JDMissingSkills) > 0 {
		parts = append(parts, strings.Join(row.JDMissingSkills, ", "))
	} else {
		parts = append(parts, "None")
	}

	return strings.Join(parts, "\n")
}
