// Package types provides type definitions for structured data used throughout the resume-ranker system.
package types

// EducationLevel is the coarse education category extracted from a resume.
type EducationLevel string

// Recognized education levels, ordered by seniority.
const (
	EducationOther     EducationLevel = "Other"
	EducationBachelors EducationLevel = "Bachelors"
	EducationMasters   EducationLevel = "Masters"
	EducationPhD       EducationLevel = "PhD"
)

// OrdinalRank returns the numeric rank of an education level for scoring.
// Unknown values rank as Other.
func (e EducationLevel) OrdinalRank() int {
	switch e {
	case EducationPhD:
		return 3
	case EducationMasters:
		return 2
	case EducationBachelors:
		return 1
	default:
		return 0
	}
}

// CandidateProfile holds the structured signals extracted from one uploaded resume.
// Profiles are created once per resume at analysis time and never mutated afterwards,
// except for the display-only reordering of SkillsFound during ranking.
type CandidateProfile struct {
	CandidateID      string         `json:"candidate_id"`
	RawText          string         `json:"raw_text,omitempty"`
	CleanText        string         `json:"clean_text,omitempty"`
	YearsExperience  float64        `json:"years_experience"`
	MonthsExperience int            `json:"months_experience"`
	Education        EducationLevel `json:"education"`
	Email            string         `json:"email,omitempty"`
	Phone            string         `json:"phone,omitempty"`
	SkillsFound      []string       `json:"skills_found"`
	Recency          float64        `json:"recency"`
	CGPA             *float64       `json:"cgpa,omitempty"`
}

// TotalSkillsFound returns the number of whitelisted skills found in the resume.
func (p *CandidateProfile) TotalSkillsFound() int {
	return len(p.SkillsFound)
}
