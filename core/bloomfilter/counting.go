package bloomfilter

import "rnaiforge-core/apierr"

// MaxCountingBytes is the §4.3 ceiling: 200 MiB of 8-bit counters.
const MaxCountingBytes = 200 * 1024 * 1024

// No counting Bloom filter library was found anywhere in the retrieved
// corpus — willf/bloom (wired for the bit-set variant in bitset.go) only
// implements plain bit sets. Counting is hand-rolled here, reusing the
// same sizing helper as the bit-set variant and hash.go's double-hash
// probe positions (the bit-set variant hashes with willf/bloom instead).
type Counting struct {
	counters []uint8
	m, k     uint64
	n        uint64
}

// NewCounting sizes and constructs a counting Bloom filter for an expected
// element count n and target false-positive rate p. The counter count is
// clamped to MaxCountingBytes (§4.3), so a larger estimate yields a filter
// of exactly MaxCountingBytes counters rather than a *apierr.ResourceError.
func NewCounting(n uint64, p float64) (*Counting, error) {
	if p <= 0 || p >= 1 {
		p = DefaultFalsePositiveRate
	}
	m := sizeBits(n, p, MaxCountingBytes) // one counter byte per slot
	if m > MaxCountingBytes {
		return nil, apierr.NewResourceError("counting bloom filter would require %d counters, exceeding the %d byte ceiling", m, MaxCountingBytes)
	}
	k := hashCount(m, n, minHashCount, maxHashCount)
	return &Counting{
		counters: make([]uint8, m),
		m:        m,
		k:        uint64(k),
		n:        n,
	}, nil
}

// Add increments all k positions for kmer, saturating at 255.
func (c *Counting) Add(kmer []byte) {
	for _, pos := range positions(kmer, uint(c.k), c.m) {
		if c.counters[pos] < 255 {
			c.counters[pos]++
		}
	}
}

// Count returns the minimum of the k counter positions for kmer — a
// conservative upper bound on the number of times it was inserted.
func (c *Counting) Count(kmer []byte) int {
	min := uint8(255)
	for _, pos := range positions(kmer, uint(c.k), c.m) {
		if c.counters[pos] < min {
			min = c.counters[pos]
		}
	}
	return int(min)
}

// MemoryBytes reports the counter array's memory footprint.
func (c *Counting) MemoryBytes() uint64 { return c.m }
