package types

// RankingResult is one row of the ranked candidate table: the candidate's
// profile plus every sub-score and the final weighted score.
type RankingResult struct {
	CandidateProfile

	// JDFoundSkills are the candidate's skills that the job description requires.
	JDFoundSkills []string `json:"jd_found_skills"`
	// JDMissingSkills are required skills (normalized form) absent from the candidate.
	JDMissingSkills []string `json:"jd_missing_skills"`

	JDSimilarity     float64 `json:"jd_similarity"`
	SkillCoverage    float64 `json:"skill_coverage"`
	SkillRarityScore float64 `json:"skill_rarity_score"`
	ExpScore         float64 `json:"exp_score"`
	EduScore         float64 `json:"edu_score"`
	RecencyScore     float64 `json:"recency_score"`
	CGPAScore        float64 `json:"cgpa_score"`
	FinalScore       float64 `json:"final_score"`
}

// RankedCandidates is the full output of one scoring run, ordered by final
// score descending with ties kept in upload order.
type RankedCandidates struct {
	RequiredSkills []string        `json:"required_skills"`
	Results        []RankingResult `json:"results"`
}
