package ranking

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// listSeparator joins list-valued fields into one CSV cell.
const listSeparator = "; "

// csvHeader is the fixed column order of the exported table. ReadResults
// depends on it, so column changes are format changes.
var csvHeader = []string{
	"candidate_id",
	"years_experience",
	"months_experience",
	"education",
	"email",
	"phone",
	"skills_found",
	"recency",
	"cgpa",
	"jd_found_skills",
	"jd_missing_skills",
	"jd_similarity",
	"skill_coverage",
	"skill_rarity_score",
	"exp_score",
	"edu_score",
	"recency_score",
	"cgpa_score",
	"final_score",
}

// WriteResults exports ranked candidates as a flat CSV table: one header row,
// one row per candidate, list fields joined with "; ". Raw and cleaned text
// are deliberately not exported.
func WriteResults(w io.Writer, ranked *types.RankedCandidates) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range ranked.Results {
		cgpa := ""
		if row.CGPA != nil {
			cgpa = formatFloat(*row.CGPA)
		}
		record := []string{
			row.CandidateID,
			formatFloat(row.YearsExperience),
			strconv.Itoa(row.MonthsExperience),
			string(row.Education),
			row.Email,
			row.Phone,
			strings.Join(row.SkillsFound, listSeparator),
			formatFloat(row.Recency),
			cgpa,
			strings.Join(row.JDFoundSkills, listSeparator),
			strings.Join(row.JDMissingSkills, listSeparator),
			formatFloat(row.JDSimilarity),
			formatFloat(row.SkillCoverage),
			formatFloat(row.SkillRarityScore),
			formatFloat(row.ExpScore),
			formatFloat(row.EduScore),
			formatFloat(row.RecencyScore),
			formatFloat(row.CGPAScore),
			formatFloat(row.FinalScore),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.CandidateID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadResults parses a table previously produced by WriteResults. Field
// values round-trip exactly; list fields are reconstructed from their joined
// form.
func ReadResults(r io.Reader) (*types.RankedCandidates, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("unexpected CSV header: got %d columns, want %d", len(header), len(csvHeader))
	}

	ranked := &types.RankedCandidates{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		row := types.RankingResult{}
		row.CandidateID = record[0]
		row.YearsExperience = parseFloat(record[1])
		row.MonthsExperience, _ = strconv.Atoi(record[2])
		row.Education = types.EducationLevel(record[3])
		row.Email = record[4]
		row.Phone = record[5]
		row.SkillsFound = splitList(record[6])
		row.Recency = parseFloat(record[7])
		if record[8] != "" {
			cgpa := parseFloat(record[8])
			row.CGPA = &cgpa
		}
		row.JDFoundSkills = splitList(record[9])
		row.JDMissingSkills = splitList(record[10])
		row.JDSimilarity = parseFloat(record[11])
		row.SkillCoverage = parseFloat(record[12])
		row.SkillRarityScore = parseFloat(record[13])
		row.ExpScore = parseFloat(record[14])
		row.EduScore = parseFloat(record[15])
		row.RecencyScore = parseFloat(record[16])
		row.CGPAScore = parseFloat(record[17])
		row.FinalScore = parseFloat(record[18])

		ranked.Results = append(ranked.Results, row)
	}

	return ranked, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSeparator)
}
