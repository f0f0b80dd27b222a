// Package skills provides the skill taxonomy index, the whitelist n-gram
// matcher, and the corpus-relative rarity scorer.
package skills

import (
	"sort"

	"github.com/jonathan/resume-ranker/internal/parsing"
)

// Index maps normalized surface forms (taxonomy entries plus synonyms) to
// canonical skill names. It is immutable after Build and safe for concurrent
// readers; all lookups must use parsing.NormalizeForMatch-ed keys, which
// Extract guarantees.
type Index struct {
	entries map[string]string
	// keys preserves insertion order so fuzzy tie-breaking is deterministic.
	keys []string
}

// Build constructs an index from an ordered taxonomy and a synonym table.
// Taxonomy entries are inserted first (later duplicates overwrite earlier
// ones); synonym alternates are inserted only when their canonical form is
// already present, and map to the canonical's original taxonomy spelling.
// Synonyms whose canonical is absent are silently dropped.
func Build(taxonomy []string, synonyms map[string][]string) *Index {
	idx := &Index{entries: make(map[string]string, len(taxonomy))}

	for _, skill := range taxonomy {
		k := parsing.NormalizeForMatch(skill)
		if k == "" {
			continue
		}
		idx.insert(k, skill)
	}

	// Iterate canonicals in sorted order so the index (and fuzzy tie-breaking
	// on its key order) is deterministic regardless of map iteration.
	canons := make([]string, 0, len(synonyms))
	for canon := range synonyms {
		canons = append(canons, canon)
	}
	sort.Strings(canons)

	for _, canon := range canons {
		alts := synonyms[canon]
		c := parsing.NormalizeForMatch(canon)
		canonical, ok := idx.entries[c]
		if !ok {
			continue
		}
		for _, alt := range alts {
			ak := parsing.NormalizeForMatch(alt)
			if ak == "" {
				continue
			}
			idx.insert(ak, canonical)
		}
	}

	return idx
}

func (idx *Index) insert(key, canonical string) {
	if _, exists := idx.entries[key]; !exists {
		idx.keys = append(idx.keys, key)
	}
	idx.entries[key] = canonical
}

// Lookup returns the canonical skill for a normalized surface form.
func (idx *Index) Lookup(key string) (string, bool) {
	canonical, ok := idx.entries[key]
	return canonical, ok
}

// Len returns the number of surface forms in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}
