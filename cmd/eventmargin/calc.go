package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bayneri/eventmargin/internal/profit"
	"github.com/bayneri/eventmargin/internal/report"
	"go.uber.org/zap"
)

func runCalc(args []string) error {
	fs, opts := baseFlags("calc")
	format := fs.String("format", "text", "comma-separated output formats: text, md, json")
	outDir := fs.String("out", "", "write summary files to this directory instead of stdout")
	failOnLoss := fs.Bool("fail-on-loss", false, "exit with code 2 when the estimate is a loss")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, logger, err := loadEnv(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	loaded, err := loadScenario(opts, cfg)
	if err != nil {
		return err
	}
	summary := report.Build(loaded.meta, loaded.inputs, cfg.Currency)
	logger.Debug("computed estimate",
		zap.String("scenario", summary.Scenario),
		zap.Float64("netProfit", summary.Result.NetProfit),
		zap.String("outcome", string(summary.Result.Outcome)))

	formats := parseFormat(*format)
	if *outDir != "" {
		if err := writeSummaryFiles(*outDir, summary, formats); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote estimate to %s\n", *outDir)
	} else {
		if err := printSummary(summary, formats); err != nil {
			return err
		}
	}

	if *failOnLoss && summary.Result.Outcome == profit.OutcomeLoss {
		return lossError(errors.New("projected loss"))
	}
	return nil
}

func writeSummaryFiles(outDir string, summary report.Summary, formats []string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if includesFormat(formats, "md") {
		if err := report.WriteMarkdownSummary(filepath.Join(outDir, "summary.md"), summary); err != nil {
			return err
		}
	}
	if includesFormat(formats, "json") {
		if err := report.WriteSummaryJSON(filepath.Join(outDir, "summary.json"), summary); err != nil {
			return err
		}
	}
	if includesFormat(formats, "text") {
		f, err := os.Create(filepath.Join(outDir, "summary.txt"))
		if err != nil {
			return err
		}
		report.WriteText(f, summary)
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(summary report.Summary, formats []string) error {
	for i, format := range formats {
		if i > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		switch format {
		case "text":
			report.WriteText(os.Stdout, summary)
		case "md":
			fmt.Fprint(os.Stdout, report.RenderMarkdown(summary))
		case "json":
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(data))
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	}
	return nil
}

func parseFormat(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{"text"}
	}
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return []string{"text"}
	}
	return out
}

func includesFormat(formats []string, value string) bool {
	for _, format := range formats {
		if format == value {
			return true
		}
	}
	return false
}
