// Package rnai is the stable facade the core exposes to external
// collaborators (§6): build_index and run_pipeline, plus the
// configuration record and constants a caller needs to drive them. It
// wires together sequence, genomeindex, pipeline and efficacy the same
// way the teacher's pkg/api wraps its engine behind a narrow, documented
// surface.
package rnai

import (
	"bytes"
	"context"

	"rnaiforge-core/apierr"
	"rnaiforge-core/bioconst"
	"rnaiforge-core/efficacy"
	"rnaiforge-core/genomeindex"
	"rnaiforge-core/pipeline"
	"rnaiforge-core/sequence"
)

// Config is the external configuration record (§6): efficacy_threshold,
// species, plus three informational fields the core accepts but does
// not interpret algorithmically.
type Config struct {
	EfficacyThreshold int // [50, 99], default 70
	Species           efficacy.Species
	HomologyThreshold int    // informational; core treats PATENT_EXCLUSION_LENGTH as fixed
	RNAiMode          string // informational
	DeliverySystem    string // informational
}

// DefaultConfig returns the §6 documented defaults.
func DefaultConfig() Config {
	return Config{
		EfficacyThreshold: 70,
		Species:           efficacy.Lepidoptera,
		HomologyThreshold: bioconst.PatentExclusionLength,
	}
}

// ProgressFunc reports a fraction in [0, 1] and an optional phase label,
// shared by both operations (§6).
type ProgressFunc func(fraction float64, phase string)

// BuildIndex parses a non-target FASTA document, validates the
// concatenated sequence, and builds its membership index (§6, operation
// 1). Input may also be a bare sequence with no header lines — ParseFASTA
// passes such input through unchanged.
func BuildIndex(ctx context.Context, nonTargetFASTA []byte, progress ProgressFunc) (genomeindex.Index, []sequence.Warning, error) {
	raw, err := sequence.ParseFASTACtx(ctx, bytes.NewReader(nonTargetFASTA))
	if err != nil {
		return nil, nil, err
	}
	seq, err := sequence.Validate(raw)
	if err != nil {
		return nil, nil, err
	}

	var indexProgress genomeindex.ProgressFunc
	if progress != nil {
		indexProgress = func(fraction float64, phase string) { progress(fraction, phase) }
	}

	idx, err := genomeindex.BuildIndex(ctx, seq, genomeindex.DefaultBuildConfig(), indexProgress)
	if err != nil {
		return nil, seq.Warnings(), err
	}
	return idx, seq.Warnings(), nil
}

// PipelineOutput is the §6 operation-2 result shape: ranked candidates,
// the rejection histogram, and a canceled flag.
type PipelineOutput struct {
	Candidates []pipeline.Candidate
	Metrics    pipeline.RejectionMetrics
	Stats      pipeline.Stats
	Canceled   bool
}

// RunPipeline parses and size-validates the target FASTA document and
// config, then scans it against a pre-built index (§6, operation 2).
// Unlike BuildIndex, the target is validated leniently: alphabet
// violations are not rejected up front, since the pipeline's own
// data-quality stage is responsible for catching them window by window.
// If an emitted candidate breaks the output invariants (length 21, match
// length below 15, safety score at least 75, fold risk at most 50, efficacy
// at least the threshold), the run returns an
// *apierr.InternalInvariantViolation and no candidates.
func RunPipeline(ctx context.Context, targetFASTA []byte, idx genomeindex.Index, cfg Config, progress ProgressFunc) (PipelineOutput, []sequence.Warning, error) {
	raw, err := sequence.ParseFASTACtx(ctx, bytes.NewReader(targetFASTA))
	if err != nil {
		return PipelineOutput{}, nil, err
	}
	seq, err := sequence.ValidateTarget(raw)
	if err != nil {
		return PipelineOutput{}, nil, err
	}
	if cfg.EfficacyThreshold < 50 || cfg.EfficacyThreshold > 99 {
		return PipelineOutput{}, seq.Warnings(), apierr.NewValidationError(
			"efficacy_threshold %d out of range [50, 99]", cfg.EfficacyThreshold)
	}
	species := cfg.Species
	if species == "" {
		species = efficacy.Lepidoptera
	}

	var pipelineProgress pipeline.ProgressFunc
	if progress != nil {
		pipelineProgress = func(scanned, limit int) {
			fraction := 0.0
			if limit > 0 {
				fraction = float64(scanned) / float64(limit)
			}
			progress(fraction, "scanning")
		}
	}

	result := pipeline.Run(ctx, seq.Bytes(), idx, cfg.EfficacyThreshold, species, pipelineProgress)
	for _, c := range result.Candidates {
		if len(c.Sequence) != bioconst.SiRNALength || c.MatchLength >= bioconst.PatentExclusionLength ||
			c.SafetyScore < bioconst.SafetyPassScore || c.FoldRisk > bioconst.FoldRiskMax ||
			c.Efficacy < float64(cfg.EfficacyThreshold) {
			return PipelineOutput{}, seq.Warnings(), apierr.NewInvariantViolation(
				"candidate at position %d escaped the filter chain", c.Position)
		}
	}

	return PipelineOutput{
		Candidates: result.Candidates,
		Metrics:    result.Metrics,
		Stats:      result.Stats,
		Canceled:   result.Stats.Canceled,
	}, seq.Warnings(), nil
}
