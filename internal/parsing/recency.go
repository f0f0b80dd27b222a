package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// recencyReferenceYear anchors the gap-to-score mapping. Deliberately a fixed
// constant rather than the current year; changing it shifts every score.
const recencyReferenceYear = 2025

var (
	keywordYearRe = regexp.MustCompile(`(intern|internship|experience|project|work|employed|role|position|data|ml|ai|analyst)[\s\S]{0,40}?(20\d{2})`)
	bareYearRe    = regexp.MustCompile(`20\d{2}`)
)

// neutralRecency is returned when the text mentions no usable year at all.
const neutralRecency = 0.6

// ExtractRecency estimates how recently a candidate was professionally active
// from years mentioned near experience-indicating keywords, mapped onto a
// fixed decay table. Falls back to any bare post-2018 year, then to a neutral
// default. Result is always in [0, 1].
func ExtractRecency(text string) float64 {
	text = strings.ToLower(text)

	latest := 0
	for _, m := range keywordYearRe.FindAllStringSubmatch(text, -1) {
		year, _ := strconv.Atoi(m[2])
		if year > latest {
			latest = year
		}
	}

	if latest == 0 {
		for _, y := range bareYearRe.FindAllString(text, -1) {
			year, _ := strconv.Atoi(y)
			if year > 2018 && year > latest {
				latest = year
			}
		}
		if latest == 0 {
			return neutralRecency
		}
	}

	gap := recencyReferenceYear - latest
	switch {
	case gap <= 0:
		return 1.0
	case gap == 1:
		return 0.9
	case gap == 2:
		return 0.75
	case gap <= 4:
		return 0.6
	}
	return 0.45
}
