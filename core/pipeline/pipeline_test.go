package pipeline

import (
	"context"
	"testing"

	"rnaiforge-core/efficacy"
	"rnaiforge-core/genomeindex"
	"rnaiforge-core/sequence"
)

func buildTestIndex(t *testing.T, raw string) genomeindex.Index {
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

func TestRun_MetricsCoverScannedWindows(t *testing.T) {
	nonTarget := ""
	for i := 0; i < 10; i++ {
		nonTarget += "TTTTTCCCCCGGGGGAAAAA"
	}
	idx := buildTestIndex(t, nonTarget)

	target := ""
	for i := 0; i < 20; i++ {
		target += "ACGUACGUACGUACGUACGU"
	}

	result := Run(context.Background(), []byte(target), idx, 35, efficacy.Generic, nil)

	sum := result.Metrics.Safety + result.Metrics.Folding + result.Metrics.Efficacy + result.Metrics.DataQuality + len(result.Candidates)
	if sum != result.Stats.WindowsScanned {
		t.Fatalf("I4 violated: metrics+candidates=%d, scanned=%d", sum, result.Stats.WindowsScanned)
	}
}

func TestRun_CandidatesSortedByEfficacyDescending(t *testing.T) {
	nonTarget := ""
	for i := 0; i < 10; i++ {
		nonTarget += "GGGGGCCCCCTTTTTAAAAA"
	}
	idx := buildTestIndex(t, nonTarget)

	target := ""
	for i := 0; i < 20; i++ {
		target += "ACGUACGUACGUACGUACGU"
	}

	result := Run(context.Background(), []byte(target), idx, 0, efficacy.Generic, nil)
	for i := 1; i < len(result.Candidates); i++ {
		prev, cur := result.Candidates[i-1], result.Candidates[i]
		if prev.Efficacy < cur.Efficacy {
			t.Fatalf("not sorted descending at %d: %v < %v", i, prev.Efficacy, cur.Efficacy)
		}
		if prev.Efficacy == cur.Efficacy && prev.Position > cur.Position {
			t.Fatalf("tie not broken by ascending position at %d", i)
		}
	}
}

func TestRun_Cancellation(t *testing.T) {
	nonTarget := ""
	for i := 0; i < 10; i++ {
		nonTarget += "TTTTTCCCCCGGGGGAAAAA"
	}
	idx := buildTestIndex(t, nonTarget)

	target := ""
	for i := 0; i < 500; i++ {
		target += "ACGUACGUACGUACGUACGU"
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Run(ctx, []byte(target), idx, 35, efficacy.Generic, nil)
	if !result.Stats.Canceled {
		t.Fatalf("expected canceled result")
	}
	if len(result.Candidates) != 0 {
		t.Fatalf("expected no candidates on immediate cancellation, got %d", len(result.Candidates))
	}
}
