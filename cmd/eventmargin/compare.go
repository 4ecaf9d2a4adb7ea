package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bayneri/eventmargin/internal/profit"
	"github.com/bayneri/eventmargin/internal/report"
)

func runCompare(args []string) error {
	fs, opts := baseFlags("compare")
	inputs := fs.String("inputs", "", "comma-separated list of calc summary.json files")
	outDir := fs.String("out", "", "output directory (default <out_dir>/compare)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*inputs) == "" {
		return errors.New("--inputs is required")
	}
	cfg, logger, err := loadEnv(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()
	if *outDir == "" {
		*outDir = filepath.Join(cfg.OutDir, "compare")
	}

	paths := splitCSV(*inputs)
	summaries, err := report.ReadSummaries(paths)
	if err != nil {
		return err
	}
	agg, err := report.Aggregate(summaries, paths)
	if err != nil {
		return err
	}

	if err := report.WriteAggregateJSON(filepath.Join(*outDir, "summary.json"), agg); err != nil {
		return err
	}
	if err := report.WriteAggregateMarkdown(filepath.Join(*outDir, "summary.md"), agg); err != nil {
		return err
	}
	if len(agg.Errors) > 0 {
		if err := report.WriteWarningsMarkdown(filepath.Join(*outDir, "warnings.md"), agg.Errors); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stdout, "Wrote comparison of %d scenarios to %s (best: %s)\n", len(agg.Scenarios), *outDir, agg.Best)
	if agg.Status == profit.OutcomeLoss {
		return lossError(errors.New("at least one scenario is projected to lose money"))
	}
	return nil
}
