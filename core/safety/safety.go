// Package safety implements C6, the five-layer safety firewall (§4.6):
// 15-mer exclusion, seed occurrence, extended seed, palindrome detection,
// and biological motifs, combined into a single aggregate score and
// status. Grounded on the teacher's seed-then-verify matching style in
// core/primer/match.go and core/engine's seed scan: a fast positive from
// an index is always re-verified before it is allowed to change a
// candidate's fate.
package safety

import (
	"bytes"
	"fmt"

	"rnaiforge-core/genomeindex"
	"rnaiforge-core/kmer"
)

// Status is the §3 Safety Analysis status enum.
type Status string

const (
	Cleared     Status = "Cleared"
	SeedWarning Status = "Seed-Warning"
	Toxic       Status = "Toxic"
)

// Analysis is the full report produced for one 21-nt candidate (§3,
// "Safety Analysis").
type Analysis struct {
	MatchLength  int
	SafetyMargin int // I2: SafetyMargin + MatchLength == 15

	Seed                 []byte
	ReverseComplementSeed []byte
	HasSeedMatch         bool
	SeedMatchCount       int

	ExtendedSeed           []byte
	HasExtendedSeedMatch   bool
	ExtendedSeedMatchCount int

	HasPalindrome     bool
	PalindromeLength  int
	PalindromePosition int

	HasCpG         bool
	CpGCount       int
	HasPolyRun     bool
	PolyRunDetails []string
	ImmuneMotifs   []string

	BiologicalRiskScore int
	OverallSafetyScore  float64
	IsSafe              bool
	Status              Status

	RiskFactors []string
	Notes       []string
}

var polyRunMotifs = []string{"AAAA", "UUUU", "TTTT", "GGGG", "CCCC"}
var immuneMotifs = []string{"UGUGU", "GUCCUUCAA", "UGGC", "GCCA"}

// Analyze runs all five layers against a 21-nt candidate and a non-target
// index, producing the full report (§4.6).
func Analyze(candidate []byte, idx genomeindex.Index) Analysis {
	a := Analysis{}

	matchLen, confirmed, bloomUnconfirmed := layer1(candidate, idx)
	a.MatchLength = matchLen
	a.SafetyMargin = 15 - matchLen
	if a.SafetyMargin < 0 {
		a.SafetyMargin = 0
	}

	seed := candidate[1:8]
	rcSeed := kmer.RevComp(seed)
	a.Seed = seed
	a.ReverseComplementSeed = rcSeed
	seedCount := idx.Count7(seed) + idx.Count7(rcSeed)
	a.SeedMatchCount = seedCount
	a.HasSeedMatch = seedCount > 0
	seedRisk := seedRiskFor(seedCount)

	extSeed := candidate[1:13]
	rcExt := kmer.RevComp(extSeed)
	a.ExtendedSeed = extSeed
	if !confirmed {
		found, count := idx.ExactSubstringCount(rcExt)
		a.HasExtendedSeedMatch = found
		a.ExtendedSeedMatchCount = count
	}

	palLen, palPos := longestPalindrome(candidate)
	a.HasPalindrome = palLen > 0
	a.PalindromeLength = palLen
	a.PalindromePosition = palPos
	palindromeRisk := palindromeRiskFor(palLen)

	cpgCount := countCpG(candidate)
	a.CpGCount = cpgCount
	a.HasCpG = cpgCount >= 3

	var polyDetails []string
	for _, motif := range polyRunMotifs {
		if bytes.Contains(candidate, []byte(motif)) {
			polyDetails = append(polyDetails, motif)
		}
	}
	a.PolyRunDetails = polyDetails
	a.HasPolyRun = len(polyDetails) > 0

	var foundImmune []string
	asU := bytes.ReplaceAll(candidate, []byte("T"), []byte("U"))
	for _, motif := range immuneMotifs {
		m := []byte(motif)
		if bytes.Contains(candidate, m) || bytes.Contains(asU, m) {
			foundImmune = append(foundImmune, motif)
		}
	}
	a.ImmuneMotifs = foundImmune

	biologicalRisk := 0
	if a.HasCpG {
		biologicalRisk += 20
	}
	if a.HasPolyRun {
		biologicalRisk += 25
	}
	if len(foundImmune) > 0 {
		biologicalRisk += 30
	}
	a.BiologicalRiskScore = biologicalRisk

	if confirmed {
		a.OverallSafetyScore = 0
	} else {
		score := 100.0
		switch {
		case matchLen >= 14:
			score -= 40
		case matchLen >= 12:
			score -= 20
		case matchLen >= 10:
			score -= 10
		}
		if bloomUnconfirmed {
			score -= 30
		}
		score -= float64(seedRisk) * 0.30
		score -= float64(palindromeRisk) * 0.15
		score -= float64(biologicalRisk) * 0.10
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		a.OverallSafetyScore = score
	}

	switch {
	case confirmed:
		a.Status = Toxic
	case a.HasSeedMatch && seedRisk >= 50, a.OverallSafetyScore < 80:
		a.Status = SeedWarning
	default:
		a.Status = Cleared
	}
	a.IsSafe = a.Status != Toxic

	a.RiskFactors = riskFactors(a, confirmed, bloomUnconfirmed)
	a.Notes = notes(a, confirmed, bloomUnconfirmed)

	return a
}

// layer1 implements the hard 15-mer exclusion gate (§4.6 Layer 1) and the
// independent max_contiguous_match calculation.
func layer1(candidate []byte, idx genomeindex.Index) (matchLen int, confirmed bool, bloomUnconfirmed bool) {
	kmer.Windows(candidate, 15, func(w []byte, _ int) {
		if confirmed {
			return
		}
		if !idx.Contains15(w) {
			return
		}
		if idx.VerifyExact15(w) {
			confirmed = true
			return
		}
		bloomUnconfirmed = true
	})
	matchLen = idx.MaxContiguousMatch(candidate)
	return matchLen, confirmed, bloomUnconfirmed
}

func seedRiskFor(occurrences int) int {
	switch {
	case occurrences == 0:
		return 0
	case occurrences <= 10:
		return 15
	case occurrences <= 50:
		return 30
	case occurrences <= 100:
		return 50
	default:
		return 80
	}
}

func palindromeRiskFor(length int) int {
	switch {
	case length >= 8:
		return 60
	case length >= 6:
		return 30
	case length >= 4:
		return 10
	default:
		return 0
	}
}

// longestPalindrome searches candidate for the longest contiguous
// subsequence (length 12 down to 4) equal to its own reverse complement,
// returning its length and start position, or (0, -1) if none found.
func longestPalindrome(candidate []byte) (length int, position int) {
	for l := 12; l >= 4; l-- {
		for i := 0; i+l <= len(candidate); i++ {
			sub := candidate[i : i+l]
			if bytes.Equal(sub, kmer.RevComp(sub)) {
				return l, i
			}
		}
	}
	return 0, -1
}

// countCpG counts non-overlapping occurrences of "CG".
func countCpG(candidate []byte) int {
	count := 0
	for i := 0; i+2 <= len(candidate); {
		if candidate[i] == 'C' && candidate[i+1] == 'G' {
			count++
			i += 2
			continue
		}
		i++
	}
	return count
}

func riskFactors(a Analysis, confirmed, bloomUnconfirmed bool) []string {
	var out []string
	if confirmed {
		out = append(out, "confirmed 15-mer homology to non-target")
	}
	if bloomUnconfirmed {
		out = append(out, "unconfirmed bloom-filter positive for a 15-mer window")
	}
	if a.HasSeedMatch {
		out = append(out, fmt.Sprintf("seed region occurs %d times in non-target", a.SeedMatchCount))
	}
	if a.HasExtendedSeedMatch {
		out = append(out, "extended seed confirmed in non-target")
	}
	if a.HasPalindrome {
		out = append(out, fmt.Sprintf("self-complementary run of length %d at position %d", a.PalindromeLength, a.PalindromePosition))
	}
	if a.HasCpG {
		out = append(out, fmt.Sprintf("CpG count %d meets immune-stimulatory threshold", a.CpGCount))
	}
	if a.HasPolyRun {
		out = append(out, fmt.Sprintf("poly-run motif present: %v", a.PolyRunDetails))
	}
	if len(a.ImmuneMotifs) > 0 {
		out = append(out, fmt.Sprintf("immune-stimulatory motif present: %v", a.ImmuneMotifs))
	}
	return out
}

func notes(a Analysis, confirmed, bloomUnconfirmed bool) []string {
	var out []string
	out = append(out, fmt.Sprintf("status=%s overall_safety_score=%.2f", a.Status, a.OverallSafetyScore))
	if a.MatchLength > 0 {
		out = append(out, fmt.Sprintf("max_contiguous_match=%d", a.MatchLength))
	}
	return out
}
