// Package ranking combines candidate profiles, job-description requirements
// and embedding similarity into a single weighted, totally ordered ranking.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/resume-ranker/internal/embedding"
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Score weights. Fixed constants summing to 1.0; rankings are only
// reproducible across runs if these never move.
const (
	similarityWeight = 0.38
	coverageWeight   = 0.28
	rarityWeight     = 0.14
	experienceWeight = 0.08
	educationWeight  = 0.06
	recencyWeight    = 0.03
	gpaWeight        = 0.03
)

// experienceCapYears is where the experience sub-score saturates.
const experienceCapYears = 10.0

// requiredSkillNgram bounds n-gram scanning when deriving the required-skill
// set from the job description.
const requiredSkillNgram = 4

// Engine scores candidate profiles against a job description. The index is
// read-only after construction and may be shared across concurrent runs.
type Engine struct {
	index    *skills.Index
	embedder embedding.Embedder
}

// NewEngine creates a ranking engine over a built skill index and an
// embedding backend.
func NewEngine(index *skills.Index, embedder embedding.Embedder) *Engine {
	return &Engine{index: index, embedder: embedder}
}

// Rank scores every candidate profile against the job description and
// returns rows ordered by final score descending, ties kept in upload order.
// The embedding backend is a hard dependency: if it fails, the whole run
// fails and no partial ranking is returned. All other sub-scores degrade
// gracefully to zero on missing data.
func (e *Engine) Rank(ctx context.Context, profiles []types.CandidateProfile, jobDescription string) (*types.RankedCandidates, error) {
	if jobDescription == "" {
		return nil, &types.ErrMissingInput{Input: "job_description"}
	}
	if len(profiles) == 0 {
		return nil, &types.ErrMissingInput{Input: "resumes"}
	}

	required := skills.Extract(jobDescription, e.index, requiredSkillNgram, false)
	requiredSet := make(map[string]bool, len(required))
	for _, s := range required {
		requiredSet[parsing.NormalizeForMatch(s)] = true
	}

	// One batched call covering every candidate plus the job description.
	texts := make([]string, 0, len(profiles)+1)
	for _, p := range profiles {
		texts = append(texts, p.CleanText)
	}
	texts = append(texts, parsing.CleanText(jobDescription))

	vectors, err := e.embedder.Encode(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("scoring run aborted: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("scoring run aborted: embedder returned %d vectors for %d texts", len(vectors), len(texts))
	}
	jdVector := vectors[len(vectors)-1]

	candidateSkills := make([][]string, len(profiles))
	for i, p := range profiles {
		candidateSkills[i] = p.SkillsFound
	}
	rarity := skills.ComputeRarity(candidateSkills)

	results := make([]types.RankingResult, len(profiles))
	for i, p := range profiles {
		row := types.RankingResult{CandidateProfile: p}

		row.JDFoundSkills, row.JDMissingSkills = splitBySetMembership(p.SkillsFound, requiredSet)
		row.SkillsFound = skills.OrderJDFirst(p.SkillsFound, requiredSet)

		row.JDSimilarity = embedding.CosineSimilarity(vectors[i], jdVector)
		row.SkillCoverage = float64(len(row.JDFoundSkills)) / float64(max(1, len(required)))
		row.SkillRarityScore = skills.MeanRarity(p.SkillsFound, rarity)
		row.ExpScore = clamp01(p.YearsExperience / experienceCapYears)
		row.EduScore = float64(p.Education.OrdinalRank()) / 3.0
		row.RecencyScore = p.Recency
		if p.CGPA != nil {
			row.CGPAScore = clamp01(*p.CGPA / 10)
		}

		row.FinalScore = similarityWeight*row.JDSimilarity +
			coverageWeight*row.SkillCoverage +
			rarityWeight*row.SkillRarityScore +
			experienceWeight*row.ExpScore +
			educationWeight*row.EduScore +
			recencyWeight*row.RecencyScore +
			gpaWeight*row.CGPAScore

		results[i] = row
	}

	// Stable sort keeps ties in original upload order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	return &types.RankedCandidates{RequiredSkills: required, Results: results}, nil
}

// splitBySetMembership partitions a candidate's found skills into those the
// job description requires and, separately, the required normalized forms the
// candidate lacks (sorted for determinism).
func splitBySetMembership(found []string, requiredSet map[string]bool) (matched, missing []string) {
	matched = make([]string, 0, len(found))
	foundSet := make(map[string]bool, len(found))
	for _, s := range found {
		k := parsing.NormalizeForMatch(s)
		foundSet[k] = true
		if requiredSet[k] {
			matched = append(matched, s)
		}
	}

	missing = make([]string, 0)
	for k := range requiredSet {
		if !foundSet[k] {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return matched, missing
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
