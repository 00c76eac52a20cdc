package rnai

import (
	"context"
	"strings"
	"testing"
)

func TestBuildIndex_RejectsInvalidSequence(t *testing.T) {
	_, _, err := BuildIndex(context.Background(), []byte("short"), nil)
	if err == nil {
		t.Fatalf("expected a validation error for a too-short sequence")
	}
}

func TestRunPipeline_RejectsOutOfRangeThreshold(t *testing.T) {
	nonTarget := strings.Repeat("ACGTACGTAC", 20)
	idx, _, err := BuildIndex(context.Background(), []byte(nonTarget), nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	target := strings.Repeat("ACGUACGUACGUACGUACGU", 5)
	cfg := DefaultConfig()
	cfg.EfficacyThreshold = 200

	_, _, err = RunPipeline(context.Background(), []byte(target), idx, cfg, nil)
	if err == nil {
		t.Fatalf("expected a validation error for an out-of-range threshold")
	}
}

func TestRunPipeline_InvalidByteInTargetOnlyDropsOverlappingWindows(t *testing.T) {
	nonTarget := strings.Repeat("TTTTTCCCCCGGGGGAAAAA", 20)
	idx, _, err := BuildIndex(context.Background(), []byte(nonTarget), nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	target := strings.Repeat("A", 100) + "X" + strings.Repeat("A", 1000)
	cfg := DefaultConfig()
	cfg.EfficacyThreshold = 50

	result, _, err := RunPipeline(context.Background(), []byte(target), idx, cfg, nil)
	if err != nil {
		t.Fatalf("RunPipeline: %v (a stray non-nucleotide byte must not abort the scan)", err)
	}
	if result.Metrics.DataQuality == 0 {
		t.Fatalf("expected the X-overlapping windows to be counted as data_quality rejections")
	}
	if result.Metrics.DataQuality >= result.Stats.WindowsScanned {
		t.Fatalf("expected windows not overlapping the bad byte to still be scanned normally")
	}
}

func TestRunPipeline_DefaultSpeciesAppliedWhenUnset(t *testing.T) {
	nonTarget := strings.Repeat("TTTTTCCCCCGGGGGAAAAA", 20)
	idx, _, err := BuildIndex(context.Background(), []byte(nonTarget), nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	target := strings.Repeat("ACGUACGUACGUACGUACGU", 20)
	cfg := Config{EfficacyThreshold: 50}

	result, _, err := RunPipeline(context.Background(), []byte(target), idx, cfg, nil)
	if err != nil {
		t.Fatalf("RunPipeline: %v", err)
	}
	if result.Stats.WindowsScanned == 0 {
		t.Fatalf("expected at least one window scanned")
	}
}
