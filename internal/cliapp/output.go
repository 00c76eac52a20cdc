package cliapp

import (
	"fmt"
	"os"

	"rnaiforge-core/pipeline"
	"rnaiforge-core/rnai"
)

// writeCandidates renders the ranked candidate list to opt.csvOut, or to
// stdout when no path was given, using the core's stable field order
// (pipeline.Candidate.EncodeCSV).
func writeCandidates(opt scanOptions, result rnai.PipelineOutput) error {
	var w *os.File
	if opt.csvOut != "" {
		f, err := os.Create(opt.csvOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", opt.csvOut, err)
		}
		defer f.Close()
		w = f
	}

	write := func(line string) {
		if w != nil {
			fmt.Fprintln(w, line)
		} else {
			fmt.Fprintln(opt.stdout, line)
		}
	}

	write(pipeline.CSVHeader())
	for _, c := range result.Candidates {
		write(c.EncodeCSV())
	}
	return nil
}
