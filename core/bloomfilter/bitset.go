package bloomfilter

import (
	"github.com/willf/bloom"

	"rnaiforge-core/apierr"
)

// MaxBitSetBits is the §4.2 ceiling: 4,194,304,000 bits (500 MiB).
const MaxBitSetBits = 4_194_304_000

// DefaultFalsePositiveRate is the target p used when a caller does not
// override it (§4.2).
const DefaultFalsePositiveRate = 0.001

const (
	minHashCount = 3
	maxHashCount = 10
)

// BitSet is the probabilistic set-membership filter of C2. It wraps
// willf/bloom's bit-array implementation, sized and resource-checked per
// the specification's own formulas rather than the library's defaults, so
// the memory ceiling and false-positive reporting stay exact.
type BitSet struct {
	filter *bloom.BloomFilter
	m, k   uint64
	n      uint64
}

// NewBitSet sizes and constructs a bit-set Bloom filter for an expected
// element count n and target false-positive rate p. It returns a
// *apierr.ResourceError without allocating if the sizing estimate exceeds
// ceilingBits.
func NewBitSet(n uint64, p float64, ceilingBits uint64) (*BitSet, error) {
	if p <= 0 || p >= 1 {
		p = DefaultFalsePositiveRate
	}
	if ceilingBits == 0 || ceilingBits > MaxBitSetBits {
		ceilingBits = MaxBitSetBits
	}
	m := sizeBits(n, p, MaxBitSetBits)
	if m > ceilingBits {
		return nil, apierr.NewResourceError("bit-set bloom filter would require %d bits, exceeding the %d bit ceiling", m, ceilingBits)
	}
	k := hashCount(m, n, minHashCount, maxHashCount)
	return &BitSet{
		filter: bloom.New(uint(m), uint(k)),
		m:      m,
		k:      uint64(k),
		n:      n,
	}, nil
}

// Add inserts kmer into the filter.
func (b *BitSet) Add(kmer []byte) { b.filter.Add(kmer) }

// Contains reports set membership. A false result is certain; a true
// result is subject to the filter's false-positive rate (§4.2).
func (b *BitSet) Contains(kmer []byte) bool { return b.filter.Test(kmer) }

// MemoryBytes reports the bit array's memory footprint.
func (b *BitSet) MemoryBytes() uint64 { return (b.m + 7) / 8 }

// EstimatedFalsePositiveRate reports the live estimate (1 - e^(-kn/m))^k.
func (b *BitSet) EstimatedFalsePositiveRate() float64 {
	return estimatedFalsePositiveRate(b.m, b.k, b.n)
}

// Bits returns the configured bit count m.
func (b *BitSet) Bits() uint64 { return b.m }

// HashCount returns the configured hash count k.
func (b *BitSet) HashCount() uint64 { return b.k }
