package genomeindex

import "bytes"

// maxContiguousMatch searches haystack for the longest contiguous
// substring of candidate (length 14 down to 4) that occurs verbatim,
// returning the first (longest) length that hits, or 0 if none do.
func maxContiguousMatch(haystack, candidate []byte) int {
	for length := 14; length >= 4; length-- {
		if length > len(candidate) {
			continue
		}
		for i := 0; i+length <= len(candidate); i++ {
			if bytes.Contains(haystack, candidate[i:i+length]) {
				return length
			}
		}
	}
	return 0
}

// maxContiguousMatchSamples is the samples-only fallback: the best result
// across every retained sample.
func maxContiguousMatchSamples(samples [][]byte, candidate []byte) int {
	best := 0
	for _, s := range samples {
		if m := maxContiguousMatch(s, candidate); m > best {
			best = m
		}
	}
	return best
}

// substringCount reports whether needle occurs in haystack and, if so,
// its overlapping occurrence count.
func substringCount(haystack, needle []byte) (bool, int) {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false, 0
	}
	count := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if bytes.Equal(haystack[i:i+len(needle)], needle) {
			count++
		}
	}
	return count > 0, count
}
