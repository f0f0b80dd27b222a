// Package parsing provides the text normalizer and the heuristic sub-parsers
// that turn free-form resume text into structured candidate signals.
package parsing

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	matchCharsRe = regexp.MustCompile(`[^a-z0-9+.\- ]`)
)

// CleanText collapses all whitespace runs to single spaces and trims.
// Idempotent; any input produces a valid (possibly empty) output.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// NormalizeForMatch canonicalizes a string for skill-index lookups: lowercase,
// every character outside [a-z0-9+.- ] replaced by a space, whitespace
// collapsed, trimmed. Idempotent.
func NormalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = matchCharsRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
