// Package pipeline implements C9, the sliding-window orchestrator that
// ties the earlier components together (§4.9). Grounded on the teacher's
// core/engine scan loop: extract a window, run the cheap checks first,
// only carry forward what survives.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"rnaiforge-core/efficacy"
	"rnaiforge-core/safety"
)

// Candidate is the tuple produced for each surviving 21-nt window (§3).
type Candidate struct {
	Sequence        string
	Position        int
	GCContent       float64
	MatchLength     int
	Efficacy        float64
	FoldRisk        int
	SafetyScore     float64
	Seed            string
	HasSeedMatch    bool
	SeedMatchCount  int
	HasPalindrome   bool
	PalindromeLength int
	HasCpG          bool
	HasPolyRun      bool
	Status          safety.Status
	RiskFactors     []string
	SafetyNotes     []string
}

// fromAnalysis assembles the Candidate record's safety-derived fields
// from a full Safety Analysis (§3, Candidate = union of these fields
// plus scoring outputs).
func fromAnalysis(seq string, position int, a safety.Analysis, eff float64, foldRisk int) Candidate {
	return Candidate{
		Sequence:         seq,
		Position:         position,
		GCContent:        efficacy.GCContent([]byte(seq)),
		MatchLength:      a.MatchLength,
		Efficacy:         eff,
		FoldRisk:         foldRisk,
		SafetyScore:      a.OverallSafetyScore,
		Seed:             string(a.Seed),
		HasSeedMatch:     a.HasSeedMatch,
		SeedMatchCount:   a.SeedMatchCount,
		HasPalindrome:    a.HasPalindrome,
		PalindromeLength: a.PalindromeLength,
		HasCpG:           a.HasCpG,
		HasPolyRun:       a.HasPolyRun,
		Status:           a.Status,
		RiskFactors:      a.RiskFactors,
		SafetyNotes:      a.Notes,
	}
}

// EncodeCSV renders a candidate using the stable field order external
// collaborators (the dashboard's CSV export) depend on: this core owns
// the contract even though the writer itself lives outside the core
// (§6, SPEC_FULL §13). The first fourteen columns are the exact §6 order —
// sequence, position, efficiency, safety_score, gc_content, status,
// match_length, fold_risk, seed, has_seed_match, has_palindrome(+length),
// has_cpg_motif, has_poly_run — with everything else appended afterward as
// supplementary columns. Risk factors and notes are semicolon-joined so
// the record stays one CSV line.
func (c Candidate) EncodeCSV() string {
	fields := []string{
		c.Sequence,
		strconv.Itoa(c.Position),
		strconv.FormatFloat(c.Efficacy, 'f', 2, 64),
		strconv.FormatFloat(c.SafetyScore, 'f', 2, 64),
		strconv.FormatFloat(c.GCContent, 'f', 2, 64),
		string(c.Status),
		strconv.Itoa(c.MatchLength),
		strconv.Itoa(c.FoldRisk),
		c.Seed,
		strconv.FormatBool(c.HasSeedMatch),
		strconv.FormatBool(c.HasPalindrome),
		strconv.Itoa(c.PalindromeLength),
		strconv.FormatBool(c.HasCpG),
		strconv.FormatBool(c.HasPolyRun),
		strconv.Itoa(c.SeedMatchCount),
		strings.Join(c.RiskFactors, ";"),
		strings.Join(c.SafetyNotes, ";"),
	}
	return strings.Join(fields, ",")
}

// CSVHeader is the column header matching EncodeCSV's field order.
func CSVHeader() string {
	return strings.Join([]string{
		"sequence", "position", "efficiency", "safety_score", "gc_content",
		"status", "match_length", "fold_risk", "seed", "has_seed_match",
		"has_palindrome", "palindrome_length", "has_cpg_motif", "has_poly_run",
		"seed_match_count", "risk_factors", "safety_notes",
	}, ",")
}

func (c Candidate) String() string {
	return fmt.Sprintf("Candidate{pos=%d efficacy=%.2f safety=%.2f status=%s}", c.Position, c.Efficacy, c.SafetyScore, c.Status)
}
