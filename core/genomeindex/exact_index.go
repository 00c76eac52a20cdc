package genomeindex

import "rnaiforge-core/kmerindex"

// exactIndex implements Index for non-target sequences ≤10 MB (§3). It
// keeps the full non-target sequence in memory, since it is already
// bounded by LargeFileThreshold — so Layer 1's max_contiguous_match and
// Layer 3's extended-seed test always have the full sequence available.
type exactIndex struct {
	exact *kmerindex.Exact
	seq   []byte
	stats Stats
}

func (e *exactIndex) Contains15(kmer []byte) bool    { return e.exact.Contains15(kmer) }
func (e *exactIndex) VerifyExact15(kmer []byte) bool { return e.exact.Contains15(kmer) }
func (e *exactIndex) Count7(kmer []byte) int         { return e.exact.Count7(kmer) }

func (e *exactIndex) MaxContiguousMatch(candidate []byte) int {
	return maxContiguousMatch(e.seq, candidate)
}

func (e *exactIndex) ExactSubstringCount(s []byte) (bool, int) {
	return substringCount(e.seq, s)
}

func (e *exactIndex) Stats() Stats { return e.stats }
