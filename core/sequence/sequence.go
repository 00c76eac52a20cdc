// Package sequence implements C1: FASTA ingestion and validation.
//
// A Sequence is immutable once constructed by Validate — callers only ever
// see a normalized, upper-cased, alphabet-checked byte slice, plus any
// warnings raised during validation (§4.1).
package sequence

import (
	"fmt"
)

// Sequence is an ordered, validated, upper-cased nucleotide byte sequence.
// It must not be mutated after construction; Bytes returns the backing
// slice directly for zero-copy scanning, so callers must treat it as
// read-only.
type Sequence struct {
	bytes    []byte
	warnings []Warning
}

// Warning is a non-fatal observation surfaced alongside a successful
// validation result (§7, "Warnings").
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }

// Bytes returns the validated, upper-cased sequence bytes. The returned
// slice must not be modified.
func (s *Sequence) Bytes() []byte { return s.bytes }

// Len returns the sequence length in bases.
func (s *Sequence) Len() int { return len(s.bytes) }

// Warnings returns the warnings raised during validation, if any.
func (s *Sequence) Warnings() []Warning { return s.warnings }

// At returns the byte at position i.
func (s *Sequence) At(i int) byte { return s.bytes[i] }

// Window returns a view (not a copy) of s.bytes[start:end].
func (s *Sequence) Window(start, end int) []byte { return s.bytes[start:end] }

func (s *Sequence) String() string {
	return fmt.Sprintf("Sequence(len=%d, warnings=%d)", len(s.bytes), len(s.warnings))
}

const maxNSampleBases = 1_000_000

// highNFraction is the threshold, as a fraction of the first maxNSampleBases
// bases, above which a warning is raised (§4.1: "exceeds 5%").
const highNFraction = 0.05
