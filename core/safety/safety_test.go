package safety

import (
	"context"
	"testing"

	"rnaiforge-core/genomeindex"
	"rnaiforge-core/sequence"
)

func mustIndex(t *testing.T, raw string) genomeindex.Index {
	t.Helper()
	seq, err := sequence.Validate([]byte(raw))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	idx, err := genomeindex.BuildIndex(context.Background(), seq, genomeindex.DefaultBuildConfig(), nil)
	if err != nil {
		t.Fatalf("build index: %v", err)
	}
	return idx
}

func TestAnalyze_ConfirmedToxicMatch(t *testing.T) {
	nonTarget := repeatSeq("ACGTACGTACGTACGTACGTACGTACGTACGT", 10)
	idx := mustIndex(t, nonTarget)

	candidate := []byte(nonTarget[100:121])
	a := Analyze(candidate, idx)

	if a.Status != Toxic {
		t.Fatalf("expected Toxic, got %s (score=%v)", a.Status, a.OverallSafetyScore)
	}
	if a.IsSafe {
		t.Fatalf("toxic candidate must not be safe")
	}
	if a.OverallSafetyScore != 0 {
		t.Fatalf("expected overall_safety_score=0, got %v", a.OverallSafetyScore)
	}
}

func TestAnalyze_CleanCandidateIsSafe(t *testing.T) {
	nonTarget := repeatSeq("AAAAACCCCCGGGGGTTTTTAAAAACCCCC", 5)
	idx := mustIndex(t, nonTarget)

	candidate := []byte("GATCGATCGATCGATCGATC") // 20 nt, pad to 21
	candidate = append(candidate, 'A')
	a := Analyze(candidate, idx)

	if a.Status == Toxic {
		t.Fatalf("expected non-toxic, got Toxic")
	}
	if a.SafetyMargin+a.MatchLength != 15 {
		t.Fatalf("I2 violated: margin=%d matchLen=%d", a.SafetyMargin, a.MatchLength)
	}
}

func TestAnalyze_PalindromeDetected(t *testing.T) {
	nonTarget := repeatSeq("TTTTTTTTTTTTTTTTTTTTTTTTTTTTTT", 5)
	idx := mustIndex(t, nonTarget)

	// ACGT is its own reverse complement; repeat it to build a longer
	// self-complementary run inside a 21-nt candidate.
	candidate := []byte("AAAAAAAAACGTACGTAAAAA")
	if len(candidate) != 21 {
		t.Fatalf("fixture must be 21 nt, got %d", len(candidate))
	}
	a := Analyze(candidate, idx)
	if !a.HasPalindrome {
		t.Fatalf("expected a palindrome to be detected")
	}
}

func repeatSeq(unit string, times int) string {
	out := make([]byte, 0, len(unit)*times)
	for i := 0; i < times; i++ {
		out = append(out, unit...)
	}
	return string(out)
}
