// Package genomeindex implements C5 (the chunked, yielding index builder)
// and the two index variants it can produce. Per the design notes (§9),
// the exact and probabilistic variants are modeled as a closed sum type:
// both satisfy the same Index interface, and callers (the Safety Analyzer,
// the pipeline) are written once, indifferent to which one they hold.
package genomeindex

// Variant names the index implementation actually built for a non-target
// sequence.
type Variant string

const (
	VariantExact         Variant = "exact"
	VariantProbabilistic Variant = "probabilistic"
)

// RetentionMode names how (or whether) a probabilistic index can verify a
// Bloom-positive 15-mer against the real non-target bytes (§9, "Open
// question: retained-sequence vs samples-only").
type RetentionMode string

const (
	RetentionFull    RetentionMode = "full"
	RetentionSamples RetentionMode = "samples"
	RetentionNone    RetentionMode = "none" // reported by neither variant: the exact index keeps its full sequence and reports RetentionFull
)

// Stats is the introspection record the builder reports on completion
// (§4.5: "reports total indexed k-mers, GC content percentage, memory
// used, and the variant chosen").
type Stats struct {
	Variant          Variant
	RetentionMode    RetentionMode
	TotalKmers15     int
	TotalKmers7      int
	GCContentPercent float64
	MemoryBytes      uint64
}

// Index is the membership interface both variants expose (§3, "Genome
// Index"). A single implementation of every consumer (Safety Analyzer,
// pipeline) is written against this interface alone.
type Index interface {
	// Contains15 answers the fast membership query for a 15-mer. For the
	// exact variant this is certain; for the probabilistic variant a
	// true result is subject to the filter's false-positive rate.
	Contains15(kmer []byte) bool

	// VerifyExact15 confirms a 15-mer against retained non-target bytes
	// (full sequence or samples). For the exact variant this is
	// equivalent to Contains15 (already certain).
	VerifyExact15(kmer []byte) bool

	// Count7 returns the (possibly clamped) occurrence count of a 7-mer.
	Count7(kmer []byte) int

	// MaxContiguousMatch searches the retained bytes for the longest
	// contiguous substring of candidate that occurs verbatim, from
	// length 14 down to 4; returns 0 if none hit.
	MaxContiguousMatch(candidate []byte) int

	// ExactSubstringCount performs an exact substring test of s against
	// the retained non-target bytes, returning whether it was found and,
	// if so, how many times. It is a no-op (false, 0) for a
	// samples-only probabilistic index, per §4.6 Layer 3.
	ExactSubstringCount(s []byte) (found bool, count int)

	Stats() Stats
}
