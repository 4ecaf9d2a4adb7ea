package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bayneri/eventmargin/internal/history"
	"github.com/bayneri/eventmargin/internal/monitoring"
	"go.uber.org/zap"
)

func runHistory(args []string) error {
	fs, opts := baseFlags("history")
	project := fs.String("project", "", "GCP project ID (default from config)")
	prefix := fs.String("prefix", "", "custom metric prefix (default from config)")
	scenarioName := fs.String("scenario", "", "scenario name as published")
	last := fs.String("last", "", "lookback window, e.g. 24h or 7d")
	start := fs.String("start", "", "window start (RFC3339)")
	end := fs.String("end", "", "window end (RFC3339)")
	format := fs.String("format", "text", "output format: text or json")
	timeout := fs.Duration("timeout", 30*time.Second, "API timeout")
	endpoint := fs.String("endpoint", "", "override the Cloud Monitoring API endpoint")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, logger, err := loadEnv(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	lastDur, err := history.ParseLast(*last)
	if err != nil {
		return err
	}
	if *project == "" {
		*project = cfg.Project
	}
	if *prefix == "" {
		*prefix = cfg.MetricPrefix
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	client, err := monitoring.NewGCPClient(ctx, clientOptions(*endpoint)...)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := history.Run(ctx, client, history.Options{
		Project:  *project,
		Scenario: *scenarioName,
		Prefix:   *prefix,
		Start:    *start,
		End:      *end,
		Last:     lastDur,
	})
	if err != nil {
		return err
	}
	logger.Debug("read history",
		zap.String("metric", result.Metric),
		zap.Time("start", result.Window.Start),
		zap.Time("end", result.Window.End),
		zap.Int("points", result.Count))

	switch strings.ToLower(*format) {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
	case "text":
		fmt.Fprintf(os.Stdout, "Scenario: %s\n", result.Scenario)
		fmt.Fprintf(os.Stdout, "Window: %s to %s\n", result.Window.Start.Format(time.RFC3339), result.Window.End.Format(time.RFC3339))
		fmt.Fprintf(os.Stdout, "Status: %s\n", result.Status)
		if result.Count > 0 {
			fmt.Fprintf(os.Stdout, "Points: %d\n", result.Count)
			fmt.Fprintf(os.Stdout, "Net profit latest/min/max: %.2f / %.2f / %.2f\n", result.Latest, result.Min, result.Max)
		}
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
	return nil
}
