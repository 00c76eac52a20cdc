package pipeline

import (
	"context"
	"runtime"
	"sort"

	"rnaiforge-core/bioconst"
	"rnaiforge-core/efficacy"
	"rnaiforge-core/folding"
	"rnaiforge-core/genomeindex"
	"rnaiforge-core/safety"
)

// RejectionMetrics is the §3 counter record: exactly one field is
// incremented per rejected window (the first stage to fail).
type RejectionMetrics struct {
	Safety      int
	Folding     int
	Efficacy    int
	DataQuality int
}

// Stats is an informational snapshot surfaced alongside RejectionMetrics
// (SPEC_FULL §13); it never feeds back into scoring or filtering.
type Stats struct {
	WindowsScanned   int
	CandidatesFound  int
	Canceled         bool
}

// Result is what a pipeline run returns (§4.9, §5): the ranked candidate
// list, the rejection histogram, and an informational stats snapshot.
type Result struct {
	Candidates []Candidate
	Metrics    RejectionMetrics
	Stats      Stats
}

// ProgressFunc is invoked at most every 100 windows (§4.9).
type ProgressFunc func(scanned, limit int)

const windowSize = bioconst.SiRNALength

var validQualityBytes = map[byte]bool{
	'A': true, 'C': true, 'G': true, 'T': true, 'U': true, 'N': true,
}

// Run scans target with a sliding 21-nt window against idx, applying the
// quality -> safety -> folding -> efficacy filter chain (§4.9) and
// returning survivors ranked by descending efficacy (ties broken by
// ascending position, I1/I4).
func Run(ctx context.Context, target []byte, idx genomeindex.Index, threshold int, species efficacy.Species, progress ProgressFunc) Result {
	scanLimit := len(target) - windowSize
	if scanLimit > bioconst.ScanLimit {
		scanLimit = bioconst.ScanLimit
	}
	if scanLimit < 0 {
		scanLimit = 0
	}

	var metrics RejectionMetrics
	var candidates []Candidate
	scanned := 0

	for i := 0; i < scanLimit; i++ {
		if i%100 == 0 {
			select {
			case <-ctx.Done():
				return finalize(candidates, metrics, scanned, true)
			default:
			}
			if progress != nil {
				progress(i, scanLimit)
			}
			yield()
		}

		window := target[i : i+windowSize]
		scanned++

		if !windowAlphabetOK(window) {
			metrics.DataQuality++
			continue
		}

		analysis := safety.Analyze(window, idx)
		if !analysis.IsSafe || analysis.OverallSafetyScore < bioconst.SafetyPassScore {
			metrics.Safety++
			continue
		}

		foldRisk := folding.Risk(window)
		if foldRisk > bioconst.FoldRiskMax {
			metrics.Folding++
			continue
		}

		score := efficacy.Score(window, species, foldRisk)
		if score < float64(threshold) {
			metrics.Efficacy++
			continue
		}

		candidates = append(candidates, fromAnalysis(string(window), i, analysis, score, foldRisk))
	}

	if progress != nil {
		progress(scanLimit, scanLimit)
	}

	return finalize(candidates, metrics, scanned, false)
}

func finalize(candidates []Candidate, metrics RejectionMetrics, scanned int, canceled bool) Result {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Efficacy != candidates[j].Efficacy {
			return candidates[i].Efficacy > candidates[j].Efficacy
		}
		return candidates[i].Position < candidates[j].Position
	})
	if canceled {
		candidates = nil
	}
	return Result{
		Candidates: candidates,
		Metrics:    metrics,
		Stats: Stats{
			WindowsScanned:  scanned,
			CandidatesFound: len(candidates),
			Canceled:        canceled,
		},
	}
}

func windowAlphabetOK(window []byte) bool {
	for _, b := range window {
		if !validQualityBytes[b] {
			return false
		}
	}
	return true
}

// yield is the §5 cooperative suspension point for C9 (every 100
// windows); a no-op on a preemptive multi-threaded host.
func yield() { runtime.Gosched() }
