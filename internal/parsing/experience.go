package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthsByName maps month-name tokens (and common abbreviations) to month numbers.
var monthsByName = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

const dateToken = `[a-z]{3,9}\s+\d{4}|\d{1,2}/\d{4}|\d{1,2}/\d{1,2}/\d{4}|present|current|now`

var (
	dateRangeRe      = regexp.MustCompile(`(` + dateToken + `)\s*(?:-|to|–|—|\s)\s*(` + dateToken + `)`)
	monthYearRe      = regexp.MustCompile(`^([a-z]{3,9})\s+(\d{4})`)
	dayMonthYearRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	monthSlashYearRe = regexp.MustCompile(`^(\d{1,2})/(\d{4})`)
	explicitMonthsRe = regexp.MustCompile(`(\d+)\s+months?`)
)

// Ranges longer than this are treated as extraction noise. The bound reflects
// the internship-length engagements this system targets.
const maxRangeMonths = 18

// parseToMonthYear converts a single date token to a (year, month) pair.
// Returns (0, 0) if the token is not recognized.
func parseToMonthYear(token string) (int, int) {
	token = strings.TrimSpace(strings.ToLower(token))

	switch token {
	case "present", "current", "now":
		today := time.Now()
		return today.Year(), int(today.Month())
	}

	if m := monthYearRe.FindStringSubmatch(token); m != nil {
		month, ok := monthsByName[m[1]]
		if !ok {
			month = 1
		}
		year, _ := strconv.Atoi(m[2])
		return year, month
	}

	if m := dayMonthYearRe.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[3])
		month, _ := strconv.Atoi(m[2])
		return year, month
	}

	if m := monthSlashYearRe.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[2])
		month, _ := strconv.Atoi(m[1])
		return year, month
	}

	return 0, 0
}

type monthRange struct {
	startYear, startMonth, endYear, endMonth int
}

// ExtractExperience scans resume text for paired date-range mentions and
// returns the total duration as (years rounded to 2 decimals, months).
// Ranges outside [1, 18] months are discarded as false positives; duplicate
// identical ranges are counted once. If no valid range is found, explicit
// "N month(s)" mentions are summed instead. Never fails: unparseable text
// yields (0, 0).
func ExtractExperience(text string) (float64, int) {
	text = strings.ToLower(text)

	totalMonths := 0
	seen := make(map[monthRange]bool)

	for _, pair := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		sy, sm := parseToMonthYear(pair[1])
		ey, em := parseToMonthYear(pair[2])
		if sy == 0 || ey == 0 {
			continue
		}

		months := (ey-sy)*12 + (em - sm) + 1
		if months < 1 || months > maxRangeMonths {
			continue
		}

		r := monthRange{sy, sm, ey, em}
		if seen[r] {
			continue
		}
		seen[r] = true
		totalMonths += months
	}

	if totalMonths == 0 {
		for _, m := range explicitMonthsRe.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				totalMonths += n
			}
		}
	}

	years := math.Round(float64(totalMonths)/12*100) / 100
	return years, totalMonths
}
