package genomeindex

import "rnaiforge-core/bloomfilter"

// probabilisticIndex implements Index for non-target sequences >10 MB
// (§3). It additionally retains either the full non-target sequence or a
// set of representative samples, per the RetentionMode policy knob
// decided at construction time (§9).
type probabilisticIndex struct {
	bits15    *bloomfilter.BitSet
	counting7 *bloomfilter.Counting
	full      []byte   // non-nil only when RetentionMode == RetentionFull
	samples   [][]byte // non-empty only when RetentionMode == RetentionSamples
	mode      RetentionMode
	stats     Stats
}

func (p *probabilisticIndex) Contains15(kmer []byte) bool { return p.bits15.Contains(kmer) }

func (p *probabilisticIndex) VerifyExact15(kmer []byte) bool {
	if p.full != nil {
		found, _ := substringCount(p.full, kmer)
		return found
	}
	for _, s := range p.samples {
		if found, _ := substringCount(s, kmer); found {
			return true
		}
	}
	return false
}

func (p *probabilisticIndex) Count7(kmer []byte) int { return p.counting7.Count(kmer) }

func (p *probabilisticIndex) MaxContiguousMatch(candidate []byte) int {
	if p.full != nil {
		return maxContiguousMatch(p.full, candidate)
	}
	return maxContiguousMatchSamples(p.samples, candidate)
}

func (p *probabilisticIndex) ExactSubstringCount(s []byte) (bool, int) {
	// §4.6 Layer 3: skipped entirely for a samples-only probabilistic
	// index — it does not fall back to per-sample search like
	// MaxContiguousMatch does.
	if p.full == nil {
		return false, 0
	}
	return substringCount(p.full, s)
}

func (p *probabilisticIndex) Stats() Stats { return p.stats }
