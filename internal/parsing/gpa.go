package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// gpaPatterns is an ordered cascade; the first pattern whose captured value
// lies in (0, 10] wins. Ordering matters: "7.43 CGPA" style beats "8.5/10".
var gpaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d\.\d{1,2})\s*cgpa`),
	regexp.MustCompile(`cgpa\s*[:=\- ]\s*(\d\.\d{1,2})`),
	regexp.MustCompile(`gpa\s*[:=\- ]\s*(\d\.\d{1,2})`),
	regexp.MustCompile(`(\d\.\d{1,2})\s*/\s*10`),
}

// ExtractGPA returns the candidate's GPA on a 10-point scale rounded to two
// decimals, or nil when no pattern matches.
func ExtractGPA(text string) *float64 {
	text = strings.ToLower(text)

	for _, re := range gpaPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v > 0 && v <= 10 {
			rounded := math.Round(v*100) / 100
			return &rounded
		}
	}

	return nil
}
