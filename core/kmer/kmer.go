// Package kmer holds the primitives shared by every component that slides
// a window over a sequence: validity checks and reverse-complementation.
// Generalized from the teacher's core/primer/rc.go, which only handled
// DNA; per §9 ("Reverse complement of U") this module maps U to A rather
// than rejecting it.
package kmer

import "rnaiforge-core/bioconst"

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['U'] = 'A'
}

// RevComp returns the reverse complement of seq, treating U as equivalent
// to T (mapping to A), matching the source semantics the specification
// freezes in §9. The input is not modified.
func RevComp(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

// Complement returns the complement (not reversed) of a single base.
func Complement(b byte) byte { return complement[b] }

// IsValid reports whether every byte of k is in {A,C,G,T,U} — i.e. the
// k-mer is usable for indexing or matching (N-containing k-mers are
// skipped by indexers per §3).
func IsValid(k []byte) bool {
	for _, b := range k {
		if !bioconst.IsValidBase(b) {
			return false
		}
	}
	return true
}

// Windows calls fn for every contiguous length-k window of seq, in order.
func Windows(seq []byte, k int, fn func(window []byte, offset int)) {
	if k <= 0 || len(seq) < k {
		return
	}
	for i := 0; i+k <= len(seq); i++ {
		fn(seq[i:i+k], i)
	}
}
