package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bayneri/eventmargin/internal/config"
	"github.com/bayneri/eventmargin/internal/monitoring"
	"github.com/bayneri/eventmargin/internal/profit"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func runPublish(args []string) error {
	fs, opts := baseFlags("publish")
	project := fs.String("project", "", "GCP project ID (default from config)")
	prefix := fs.String("prefix", "", "custom metric prefix (default from config)")
	dryRun := fs.Bool("dry-run", false, "print the time series without writing them")
	withDashboard := fs.Bool("dashboard", false, "create or update the estimates dashboard")
	endpoint := fs.String("endpoint", "", "override the Cloud Monitoring API endpoint")
	timeout := fs.Duration("timeout", 30*time.Second, "API timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, logger, err := loadEnv(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	req, err := publishRequest(opts, cfg, *project, *prefix)
	if err != nil {
		return err
	}
	if strings.TrimSpace(req.Project) == "" {
		return errors.New("--project is required")
	}

	if *dryRun {
		series, err := monitoring.BuildTimeSeries(req)
		if err != nil {
			return err
		}
		for _, ts := range series {
			value := ts.GetPoints()[0].GetValue().GetDoubleValue()
			fmt.Fprintf(os.Stdout, "%s{scenario=%q} %g\n", ts.GetMetric().GetType(), ts.GetMetric().GetLabels()[monitoring.LabelScenario], value)
		}
		fmt.Fprintf(os.Stdout, "Dry run: %d time series not written.\n", len(series))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	client, err := monitoring.NewGCPClient(ctx, clientOptions(*endpoint)...)
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Debug("publishing estimates",
		zap.String("project", req.Project),
		zap.String("prefix", req.Prefix),
		zap.Int("scenarios", len(req.Entries)))
	result, err := monitoring.Publish(ctx, client, req)
	if err != nil {
		return err
	}
	logger.Info("published estimates", zap.Int("series", result.Series), zap.Int("batches", result.Batches))
	fmt.Fprintf(os.Stdout, "Published %d time series to project %s.\n", result.Series, req.Project)

	if *withDashboard {
		if err := monitoring.ApplyDashboard(ctx, client, req.Project, req.Prefix); err != nil {
			return err
		}
		logger.Info("applied dashboard", zap.String("displayName", monitoring.DashboardDisplayName))
		fmt.Fprintf(os.Stdout, "Applied dashboard %q.\n", monitoring.DashboardDisplayName)
	}
	return nil
}

func clientOptions(endpoint string) []option.ClientOption {
	if strings.TrimSpace(endpoint) == "" {
		return nil
	}
	return []option.ClientOption{option.WithEndpoint(endpoint)}
}

func publishRequest(opts *commandOptions, cfg *config.Config, project, prefix string) (monitoring.PublishRequest, error) {
	loaded, err := loadScenarios(opts, cfg)
	if err != nil {
		return monitoring.PublishRequest{}, err
	}
	if project == "" {
		project = cfg.Project
	}
	if prefix == "" {
		prefix = cfg.MetricPrefix
	}
	req := monitoring.PublishRequest{
		Project: project,
		Prefix:  prefix,
		Time:    time.Now().UTC(),
	}
	for _, item := range loaded {
		req.Entries = append(req.Entries, monitoring.Entry{
			Scenario: item.meta.Name,
			Preset:   item.meta.Preset,
			Result:   profit.Compute(item.inputs),
		})
	}
	return req, nil
}
