// Package cliapp wires the cobra command, progress rendering, and core
// facade calls together for the rnaiscan demo binary. It is a thin shell
// over rnaiforge-core/rnai: no analysis logic lives here, matching the
// teacher's internal/app split (flags and I/O only; the engine lives in
// core).
package cliapp

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"rnaiforge-core/efficacy"
	"rnaiforge-core/rnai"
	"rnaiforge/internal/version"
)

// Run builds and executes the root command against argv, writing normal
// output to stdout and diagnostics to stderr. It matches the signature
// appshell.Main expects.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	var (
		targetPath    string
		nonTargetPath string
		threshold     int
		species       string
		csvOut        string
		quiet         bool
	)

	root := &cobra.Command{
		Use:     "rnaiscan",
		Short:   "Scan a target sequence for RNAi guide-strand candidates",
		Version: version.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(ctx, scanOptions{
				targetPath:    targetPath,
				nonTargetPath: nonTargetPath,
				threshold:     threshold,
				species:       species,
				csvOut:        csvOut,
				quiet:         quiet,
				stdout:        stdout,
				logger:        logger,
			})
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&targetPath, "target", "", "FASTA file for the target (pest) sequence")
	root.Flags().StringVar(&nonTargetPath, "non-target", "", "FASTA file for the non-target (protected) sequence")
	root.Flags().IntVar(&threshold, "efficacy-threshold", 70, "minimum efficacy score to emit a candidate [50,99]")
	root.Flags().StringVar(&species, "species", string(efficacy.Lepidoptera), "species profile: Lepidoptera, Coleoptera, or Generic")
	root.Flags().StringVar(&csvOut, "csv-out", "", "write ranked candidates to this CSV file instead of stdout")
	root.Flags().BoolVar(&quiet, "quiet", false, "suppress progress bars")

	if err := root.Execute(); err != nil {
		logger.Printf("error: %v", err)
		return 1
	}
	return 0
}

type scanOptions struct {
	targetPath, nonTargetPath string
	threshold                 int
	species                   string
	csvOut                    string
	quiet                     bool
	stdout                    io.Writer
	logger                    *log.Logger
}

func runScan(ctx context.Context, opt scanOptions) error {
	if opt.targetPath == "" || opt.nonTargetPath == "" {
		return fmt.Errorf("both --target and --non-target are required")
	}

	opt.logger.Printf("Loading non-target sequence from %s...", opt.nonTargetPath)
	nonTargetRaw, err := os.ReadFile(opt.nonTargetPath)
	if err != nil {
		return fmt.Errorf("reading non-target: %w", err)
	}

	progress, shutdown := newProgress(opt.quiet, opt.stdout)
	defer shutdown()

	idx, warnings, err := rnai.BuildIndex(ctx, nonTargetRaw, progress.bar("index"))
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	for _, w := range warnings {
		opt.logger.Printf("warning: %s", w.String())
	}

	opt.logger.Printf("Loading target sequence from %s...", opt.targetPath)
	targetRaw, err := os.ReadFile(opt.targetPath)
	if err != nil {
		return fmt.Errorf("reading target: %w", err)
	}

	cfg := rnai.DefaultConfig()
	cfg.EfficacyThreshold = opt.threshold
	cfg.Species = efficacy.Species(opt.species)

	opt.logger.Printf("Scanning for candidates (threshold=%d, species=%s)...", cfg.EfficacyThreshold, cfg.Species)
	result, targetWarnings, err := rnai.RunPipeline(ctx, targetRaw, idx, cfg, progress.bar("scan"))
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}
	for _, w := range targetWarnings {
		opt.logger.Printf("warning: %s", w.String())
	}
	if result.Canceled {
		opt.logger.Printf("scan canceled; reporting partial metrics")
	}

	opt.logger.Printf("found %d candidates (safety=%d folding=%d efficacy=%d data_quality=%d)",
		len(result.Candidates), result.Metrics.Safety, result.Metrics.Folding, result.Metrics.Efficacy, result.Metrics.DataQuality)

	return writeCandidates(opt, result)
}
