package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-ranker/internal/parsing"
)

// fuzzyCutoff is the minimum similarity ratio for a fuzzy token match.
const fuzzyCutoff = 0.92

// minFuzzyTokenLen excludes short tokens from fuzzy matching; below four
// characters the ratio is too coarse to be meaningful.
const minFuzzyTokenLen = 4

// Extract returns the canonical skills found in a text via whitelist n-gram
// lookup against the index. The text is normalized and tokenized; contiguous
// n-grams are scanned from maxNgram down to 1 so multi-word skills win over
// their single-word substrings. With fuzzy enabled, individual tokens of
// length >= minFuzzyTokenLen are additionally matched approximately against
// index keys at the fuzzyCutoff ratio, one best key per token, skipping keys
// already matched exactly. The result is deduplicated by canonical name and
// sorted case-insensitively; identical inputs always produce identical output.
func Extract(text string, idx *Index, maxNgram int, fuzzy bool) []string {
	t := parsing.NormalizeForMatch(text)
	tokens := strings.Fields(t)

	var found []string
	seen := make(map[string]bool)

	for n := maxNgram; n >= 1; n-- {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			if seen[gram] {
				continue
			}
			if canonical, ok := idx.Lookup(gram); ok {
				seen[gram] = true
				found = append(found, canonical)
			}
		}
	}

	if fuzzy {
		for _, token := range tokens {
			if len(token) < minFuzzyTokenLen {
				continue
			}
			key, ok := closestKey(token, idx.keys, fuzzyCutoff)
			if !ok || seen[key] {
				continue
			}
			seen[key] = true
			canonical, _ := idx.Lookup(key)
			found = append(found, canonical)
		}
	}

	return dedupeSorted(found)
}

// dedupeSorted removes duplicate canonical names and sorts the remainder
// case-insensitively.
func dedupeSorted(skills []string) []string {
	uniq := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if !uniq[s] {
			uniq[s] = true
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// closestKey returns the index key most similar to the token, provided its
// similarity ratio meets the cutoff. Ties keep the earliest key in index
// insertion order.
func closestKey(token string, keys []string, cutoff float64) (string, bool) {
	best := ""
	bestRatio := 0.0
	for _, key := range keys {
		r := similarityRatio(token, key)
		if r >= cutoff && r > bestRatio {
			best = key
			bestRatio = r
		}
	}
	return best, best != ""
}
