package parsing

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]`)
	nonEmailRe   = regexp.MustCompile(`[^A-Za-z0-9@._+-]`)
	nonDigitRe   = regexp.MustCompile(`\D`)
	mobilePrefix = "6789"
)

// ExtractContacts pulls the first email address and phone number out of raw
// resume text. Email matching runs on a unicode-normalized, ASCII-only copy
// first; if that fails, it retries on a compressed form of the raw text with
// all whitespace and non-email characters removed, which recovers addresses
// broken across lines or columns by document extraction. The phone heuristic
// scans every 10-digit window and returns the first one starting with 6-9
// (India-style mobile numbers). Both return empty strings when unmatched.
func ExtractContacts(text string) (email, phone string) {
	t := norm.NFKC.String(text)
	t = strings.ReplaceAll(t, "\u00A0", " ")
	t = nonASCIIRe.ReplaceAllString(t, " ")
	t = CleanText(t)

	email = emailRe.FindString(t)
	if email == "" {
		compressed := whitespaceRe.ReplaceAllString(text, "")
		compressed = nonEmailRe.ReplaceAllString(compressed, "")
		email = emailRe.FindString(compressed)
	}

	digits := nonDigitRe.ReplaceAllString(text, "")
	for i := 0; i+10 <= len(digits); i++ {
		window := digits[i : i+10]
		if strings.ContainsRune(mobilePrefix, rune(window[0])) {
			phone = window
			break
		}
	}

	return email, phone
}
