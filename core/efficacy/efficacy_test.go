package efficacy

import "testing"

func TestScore_ClampedToRange(t *testing.T) {
	candidates := [][]byte{
		[]byte("AAAAAAAAAAAAAAAAAAAAA"),
		[]byte("GGGGGGGGGGGGGGGGGGGGG"),
		[]byte("ACGUACGUACGUACGUACGUA"),
	}
	for _, c := range candidates {
		got := Score(c, Generic, 0)
		if got < 35 || got > 95 {
			t.Fatalf("Score(%s) = %v, want in [35, 95]", c, got)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	candidate := []byte("ACGUACGUACGUACGUACGUA")
	a := Score(candidate, Lepidoptera, 20)
	b := Score(candidate, Lepidoptera, 20)
	if a != b {
		t.Fatalf("expected deterministic score, got %v then %v", a, b)
	}
}

func TestScore_HighFoldRiskLowersScore(t *testing.T) {
	candidate := []byte("ACGUACGUACGUACGUACGUA")
	low := Score(candidate, Generic, 0)
	high := Score(candidate, Generic, 100)
	if high > low {
		t.Fatalf("expected higher fold_risk to not increase score: low=%v high=%v", low, high)
	}
}

func TestGCContent(t *testing.T) {
	candidate := []byte("GCGCGCGCGC")
	if got := GCContent(candidate); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}
