// Package folding implements C8, the hairpin-initiation proxy (§4.8): a
// cheap binary stand-in for full thermodynamic folding, used only as a
// fold_risk input to the efficacy scorer and as a threshold check in the
// pipeline orchestrator.
package folding

import (
	"bytes"

	"rnaiforge-core/kmer"
)

// Risk returns 100 if the first 4 bytes of candidate equal the first 4
// bytes of its reverse complement (a hairpin-initiation signature), else
// 0 (§4.8).
func Risk(candidate []byte) int {
	if len(candidate) < 4 {
		return 0
	}
	rc := kmer.RevComp(candidate)
	if bytes.Equal(candidate[:4], rc[:4]) {
		return 100
	}
	return 0
}
