package genomeindex

import (
	"context"
	"runtime"

	"rnaiforge-core/apierr"
	"rnaiforge-core/bioconst"
	"rnaiforge-core/bloomfilter"
	"rnaiforge-core/kmer"
	"rnaiforge-core/kmerindex"
	"rnaiforge-core/sequence"
)

// ProgressFunc reports a fraction in [0, 1] and an optional human-readable
// phase label (§6). It is invoked at most once per chunk.
type ProgressFunc func(fraction float64, phase string)

// RetentionPreference is the §9 policy knob
// (retain_non_target_for_verification) governing whether a probabilistic
// index keeps the full non-target sequence or only representative samples.
type RetentionPreference string

const (
	RetainFull    RetentionPreference = "full"
	RetainSamples RetentionPreference = "samples"
)

// BuildConfig parameterizes index construction. Zero-value fields are
// filled in by DefaultBuildConfig's choices where that makes sense; call
// DefaultBuildConfig and override selectively.
type BuildConfig struct {
	FalsePositiveRate  float64
	MemoryCeilingBytes uint64 // shared ceiling for bits15 + counting7 + retained bytes (§5 default 1 GiB); 0 disables the check
	Retention          RetentionPreference
	SampleCount        int
	SampleSize         int
}

// DefaultBuildConfig returns the specification's defaults (§4.2, §5).
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		FalsePositiveRate:  bloomfilter.DefaultFalsePositiveRate,
		MemoryCeilingBytes: 1 << 30, // 1 GiB
		Retention:          RetainFull,
		SampleCount:        32,
		SampleSize:         100_000,
	}
}

// BuildIndex builds a non-target index from seq, choosing the exact or
// probabilistic variant per §4.5's size rule and yielding control at each
// chunk boundary so progress callbacks can be serviced on a
// single-threaded host (§5, "Suspension points").
func BuildIndex(ctx context.Context, seq *sequence.Sequence, cfg BuildConfig, progress ProgressFunc) (Index, error) {
	raw := seq.Bytes()
	if len(raw) > bioconst.LargeFileThreshold {
		return buildProbabilistic(ctx, raw, cfg, progress)
	}
	return buildExact(ctx, raw, progress)
}

// chunkBounds describes one pass of the chunked scan: [start, end) is the
// window actually scanned for k-mers (including the trailing overlap);
// [start, nonOverlapEnd) is the portion counted toward GC content.
type chunkBounds struct {
	start, end, nonOverlapEnd int
}

func chunks(total int) []chunkBounds {
	var out []chunkBounds
	for start := 0; start < total; start += bioconst.ChunkSize {
		nonOverlapEnd := start + bioconst.ChunkSize
		if nonOverlapEnd > total {
			nonOverlapEnd = total
		}
		end := nonOverlapEnd + bioconst.ChunkOverlap
		if end > total {
			end = total
		}
		out = append(out, chunkBounds{start: start, end: end, nonOverlapEnd: nonOverlapEnd})
	}
	if len(out) == 0 {
		out = append(out, chunkBounds{start: 0, end: total, nonOverlapEnd: total})
	}
	return out
}

// yield is the cooperative suspension point. On a preemptive
// multi-threaded host it is a no-op (the runtime already time-slices);
// on a cooperative host it hands control back so progress can be serviced
// (§5, §9: "Yield points are required, not optional, on single-threaded
// hosts").
func yield() { runtime.Gosched() }

type gcCounter struct {
	a, c, g, tu, total int
}

func (g *gcCounter) add(window []byte) {
	for _, b := range window {
		g.total++
		switch b {
		case 'A':
			g.a++
		case 'C':
			g.c++
		case 'G':
			g.g++
		case 'T', 'U':
			g.tu++
		}
	}
}

func (g *gcCounter) percent() float64 {
	if g.total == 0 {
		return 0
	}
	return float64(g.c+g.g) / float64(g.total) * 100
}

func buildExact(ctx context.Context, raw []byte, progress ProgressFunc) (Index, error) {
	idx := kmerindex.NewExact()
	gc := &gcCounter{}
	bounds := chunks(len(raw))

	for i, c := range bounds {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		chunk := raw[c.start:c.end]
		limit := c.nonOverlapEnd - c.start
		kmer.Windows(chunk, bioconst.PatentExclusionLength, func(w []byte, offset int) {
			if offset < limit && kmer.IsValid(w) {
				idx.Add15(w)
			}
		})
		kmer.Windows(chunk, bioconst.SeedLength, func(w []byte, offset int) {
			if offset < limit && kmer.IsValid(w) {
				idx.Add7(w)
			}
		})
		gc.add(raw[c.start:c.nonOverlapEnd])

		if progress != nil {
			progress(float64(i+1)/float64(len(bounds)), "indexing (exact)")
		}
		yield()
	}

	return &exactIndex{
		exact: idx,
		seq:   raw,
		stats: Stats{
			Variant:          VariantExact,
			RetentionMode:    RetentionFull,
			TotalKmers15:     idx.Len15(),
			TotalKmers7:      idx.Len7(),
			GCContentPercent: gc.percent(),
			MemoryBytes:      uint64(len(raw)),
		},
	}, nil
}

func buildProbabilistic(ctx context.Context, raw []byte, cfg BuildConfig, progress ProgressFunc) (Index, error) {
	n15 := uint64(len(raw))
	n7 := uint64(len(raw))

	est15 := bloomfilter.EstimateBitSetBits(n15, cfg.FalsePositiveRate) / 8
	est7 := bloomfilter.EstimateCountingBytes(n7, cfg.FalsePositiveRate)
	retainedEstimate := uint64(0)
	if cfg.Retention == RetainFull {
		retainedEstimate = uint64(len(raw))
	} else {
		retainedEstimate = uint64(cfg.SampleCount * cfg.SampleSize)
	}
	if cfg.MemoryCeilingBytes > 0 && est15+est7+retainedEstimate > cfg.MemoryCeilingBytes {
		return nil, apierr.NewResourceError(
			"probabilistic index estimate (%d bytes: %d bit-set + %d counting + %d retained) exceeds the %d byte ceiling",
			est15+est7+retainedEstimate, est15, est7, retainedEstimate, cfg.MemoryCeilingBytes)
	}

	bits15, err := bloomfilter.NewBitSet(n15, cfg.FalsePositiveRate, 0)
	if err != nil {
		return nil, err
	}
	counting7, err := bloomfilter.NewCounting(n7, cfg.FalsePositiveRate)
	if err != nil {
		return nil, err
	}

	var full []byte
	var samples [][]byte
	mode := cfg.Retention
	if mode == "" {
		mode = RetainFull
	}
	if mode == RetainFull {
		full = raw
	}

	gc := &gcCounter{}
	bounds := chunks(len(raw))

	for i, c := range bounds {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		chunk := raw[c.start:c.end]
		limit := c.nonOverlapEnd - c.start
		kmer.Windows(chunk, bioconst.PatentExclusionLength, func(w []byte, offset int) {
			if offset < limit && kmer.IsValid(w) {
				bits15.Add(w)
			}
		})
		kmer.Windows(chunk, bioconst.SeedLength, func(w []byte, offset int) {
			if offset < limit && kmer.IsValid(w) {
				counting7.Add(w)
			}
		})
		gc.add(raw[c.start:c.nonOverlapEnd])

		if mode == RetainSamples && len(samples) < cfg.SampleCount {
			sampleStart := c.start
			sampleEnd := sampleStart + cfg.SampleSize
			if sampleEnd > c.nonOverlapEnd {
				sampleEnd = c.nonOverlapEnd
			}
			if sampleEnd > sampleStart {
				samples = append(samples, raw[sampleStart:sampleEnd])
			}
		}

		if progress != nil {
			progress(float64(i+1)/float64(len(bounds)), "indexing (probabilistic)")
		}
		yield()
	}

	retentionMode := RetentionFull
	if mode == RetainSamples {
		retentionMode = RetentionSamples
	}

	return &probabilisticIndex{
		bits15:    bits15,
		counting7: counting7,
		full:      full,
		samples:   samples,
		mode:      retentionMode,
		stats: Stats{
			Variant:          VariantProbabilistic,
			RetentionMode:    retentionMode,
			TotalKmers15:     0, // not tracked precisely for a probabilistic structure
			TotalKmers7:      0,
			GCContentPercent: gc.percent(),
			MemoryBytes:      bits15.MemoryBytes() + counting7.MemoryBytes() + uint64(len(full)) + sampleBytes(samples),
		},
	}, nil
}

func sampleBytes(samples [][]byte) uint64 {
	var total uint64
	for _, s := range samples {
		total += uint64(len(s))
	}
	return total
}
