package skills

import (
	"github.com/jonathan/resume-ranker/internal/parsing"
)

// ComputeRarity returns a scarcity weight per normalized skill across all
// candidates in the current batch: 1 - count/maxCount. A skill every
// candidate has scores 0; a skill only one candidate has approaches 1.
// Scoped to this batch only, recomputed fresh per run.
func ComputeRarity(candidateSkills [][]string) map[string]float64 {
	freq := make(map[string]int)
	maxCount := 0
	for _, skills := range candidateSkills {
		for _, s := range skills {
			k := parsing.NormalizeForMatch(s)
			freq[k]++
			if freq[k] > maxCount {
				maxCount = freq[k]
			}
		}
	}

	rarity := make(map[string]float64, len(freq))
	if maxCount == 0 {
		return rarity
	}
	for k, count := range freq {
		rarity[k] = 1 - float64(count)/float64(maxCount)
	}
	return rarity
}

// MeanRarity averages the rarity of a candidate's found skills; unknown
// skills count as 0. Returns 0 when the candidate has no skills.
func MeanRarity(skills []string, rarity map[string]float64) float64 {
	if len(skills) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range skills {
		sum += rarity[parsing.NormalizeForMatch(s)]
	}
	return sum / float64(len(skills))
}
