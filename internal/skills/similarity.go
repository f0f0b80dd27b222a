package skills

// similarityRatio computes the classic diff-style similarity ratio between
// two strings: 2*M/(len(a)+len(b)), where M is the total length of matching
// blocks found by recursively taking the longest common substring. The 0.92
// fuzzy cutoff was calibrated against this ratio, so the metric must not be
// swapped for plain edit distance.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	m := matchingLen(a, b)
	return 2 * float64(m) / float64(len(a)+len(b))
}

// matchingLen returns the total number of matching characters: the longest
// common substring plus, recursively, the matches to its left and right.
func matchingLen(a, b string) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingLen(a[:ai], b[:bi])
	total += matchingLen(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonSubstring returns the start offsets and length of the longest
// common substring of a and b. Ties prefer the earliest offset in a, then b.
func longestCommonSubstring(a, b string) (int, int, int) {
	bestA, bestB, bestSize := 0, 0, 0
	// lengths[j] holds the common-suffix length ending at a[i-1], b[j-1].
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > bestSize {
					bestSize = lengths[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return bestA, bestB, bestSize
}
