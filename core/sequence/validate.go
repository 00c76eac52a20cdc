package sequence

import (
	"rnaiforge-core/apierr"
	"rnaiforge-core/bioconst"
)

// Validate normalizes raw (case-folds to upper case, assumed already
// concatenated from FASTA sequence lines by ParseFASTA) and checks it
// against the alphabet and size bounds of §4.1. On success it returns an
// immutable Sequence, which may carry warnings even though validation
// passed.
func Validate(raw []byte) (*Sequence, error) {
	if len(raw) == 0 {
		return nil, apierr.NewValidationError("sequence is empty")
	}

	upper := make([]byte, len(raw))
	nCount := 0
	sampleLimit := len(raw)
	if sampleLimit > maxNSampleBases {
		sampleLimit = maxNSampleBases
	}

	for i, b := range raw {
		u := toUpper(b)
		upper[i] = u
		if !bioconst.IsAllowedBase(u) {
			return nil, apierr.NewValidationError("invalid base %q at position %d", b, i)
		}
		if i < sampleLimit && u == 'N' {
			nCount++
		}
	}

	if len(upper) < bioconst.MinGenomeSize {
		return nil, apierr.NewValidationError("sequence length %d is below the minimum of %d", len(upper), bioconst.MinGenomeSize)
	}
	if len(upper) > bioconst.MaxGenomeSize {
		return nil, apierr.NewValidationError("sequence length %d exceeds the maximum of %d", len(upper), bioconst.MaxGenomeSize)
	}

	var warnings []Warning
	if float64(nCount)/float64(sampleLimit) > highNFraction {
		warnings = append(warnings, Warning{Message: "N content exceeds 5% of the first 1,000,000 bases"})
	}

	return &Sequence{bytes: upper, warnings: warnings}, nil
}

// ValidateTarget is the lenient counterpart to Validate used for a scan
// target (§4.9): it enforces the same emptiness and size bounds and still
// upper-cases the input and raises the N-content warning, but does not
// reject bases outside the allowed alphabet. Disallowed bytes are left in
// place (upper-cased) for the pipeline's per-window data-quality check to
// catch, so a handful of bad bytes drop only the windows that overlap them
// instead of failing the whole scan (scenario: a target with one stray
// non-nucleotide character still scans).
func ValidateTarget(raw []byte) (*Sequence, error) {
	if len(raw) == 0 {
		return nil, apierr.NewValidationError("sequence is empty")
	}

	upper := make([]byte, len(raw))
	nCount := 0
	sampleLimit := len(raw)
	if sampleLimit > maxNSampleBases {
		sampleLimit = maxNSampleBases
	}

	for i, b := range raw {
		u := toUpper(b)
		upper[i] = u
		if i < sampleLimit && u == 'N' {
			nCount++
		}
	}

	if len(upper) < bioconst.MinGenomeSize {
		return nil, apierr.NewValidationError("sequence length %d is below the minimum of %d", len(upper), bioconst.MinGenomeSize)
	}
	if len(upper) > bioconst.MaxGenomeSize {
		return nil, apierr.NewValidationError("sequence length %d exceeds the maximum of %d", len(upper), bioconst.MaxGenomeSize)
	}

	var warnings []Warning
	if float64(nCount)/float64(sampleLimit) > highNFraction {
		warnings = append(warnings, Warning{Message: "N content exceeds 5% of the first 1,000,000 bases"})
	}

	return &Sequence{bytes: upper, warnings: warnings}, nil
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
