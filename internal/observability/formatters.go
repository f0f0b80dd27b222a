// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of one extracted candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %d months (%.2f years)\n", profile.MonthsExperience, profile.YearsExperience))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.Education))
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", profile.Email))
	}
	if profile.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", profile.Phone))
	}
	if profile.CGPA != nil {
		sb.WriteString(fmt.Sprintf("CGPA:       %.2f\n", *profile.CGPA))
	}
	sb.WriteString(fmt.Sprintf("Recency:    %.2f\n", profile.Recency))

	if len(profile.SkillsFound) > 0 {
		sb.WriteString("\nSkills Found:\n")
		count := min(len(profile.SkillsFound), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.SkillsFound[i]))
		}
		if len(profile.SkillsFound) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.SkillsFound)-maxItemsToShow))
		}
	}

	p.printBox("Candidate Profile: "+profile.CandidateID, strings.TrimRight(sb.String(), "\n"))
}

// PrintRanking outputs a leaderboard summary of a completed scoring run.
func (p *Printer) PrintRanking(ranked *types.RankedCandidates) {
	if ranked == nil || len(ranked.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required skills (%d): %s\n\n", len(ranked.RequiredSkills), strings.Join(ranked.RequiredSkills, ", ")))
	for i, row := range ranked.Results {
		sb.WriteString(fmt.Sprintf("%2d. %-24s %.4f\n", i+1, row.CandidateID, row.FinalScore))
		sb.WriteString(fmt.Sprintf("    sim %.2f  cov %.2f  rare %.2f  exp %.2f  edu %.2f\n",
			row.JDSimilarity, row.SkillCoverage, row.SkillRarityScore, row.ExpScore, row.EduScore))
	}

	p.printBox("Ranked Candidates", strings.TrimRight(sb.String(), "\n"))
}
