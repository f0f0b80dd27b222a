// Package profile assembles structured candidate profiles by running the
// heuristic sub-parsers and the skill matcher over raw resume text.
package profile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// maxSkillNgram bounds whitelist matching to four-token skill names.
const maxSkillNgram = 4

// Extract builds a CandidateProfile from one resume's raw text. Every
// sub-parser is best-effort: unparseable fields degrade to zero/empty/nil
// values and extraction itself never fails, including on empty text from an
// unreadable document.
func Extract(candidateID, rawText string, idx *skills.Index) types.CandidateProfile {
	clean := parsing.CleanText(rawText)

	years, months := parsing.ExtractExperience(clean)
	email, phone := parsing.ExtractContacts(clean)

	return types.CandidateProfile{
		CandidateID:      candidateID,
		RawText:          rawText,
		CleanText:        clean,
		YearsExperience:  years,
		MonthsExperience: months,
		Education:        parsing.ExtractEducation(clean),
		Email:            email,
		Phone:            phone,
		SkillsFound:      skills.Extract(clean, idx, maxSkillNgram, false),
		Recency:          parsing.ExtractRecency(clean),
		CGPA:             parsing.ExtractGPA(clean),
	}
}

// ExtractAll extracts profiles for a batch of resumes in upload order.
// Candidates are independent, so extraction fans out across goroutines; the
// returned slice preserves input order. The context only cancels scheduling,
// extraction itself does not block.
func ExtractAll(ctx context.Context, candidateIDs, rawTexts []string, idx *skills.Index) ([]types.CandidateProfile, error) {
	profiles := make([]types.CandidateProfile, len(candidateIDs))

	g, _ := errgroup.WithContext(ctx)
	for i := range candidateIDs {
		g.Go(func() error {
			profiles[i] = Extract(candidateIDs[i], rawTexts[i], idx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profiles, nil
}
