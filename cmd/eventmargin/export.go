package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bayneri/eventmargin/internal/export/monitoringjson"
	"github.com/bayneri/eventmargin/internal/export/terraform"
)

func runExport(args []string) error {
	if len(args) < 1 {
		return errors.New("export requires a target: monitoring-json or terraform")
	}
	switch args[0] {
	case "monitoring-json":
		return runExportMonitoringJSON(args[1:])
	case "terraform":
		return runExportTerraform(args[1:])
	default:
		return fmt.Errorf("unknown export target %q", args[0])
	}
}

func runExportMonitoringJSON(args []string) error {
	fs, opts := baseFlags("export monitoring-json")
	project := fs.String("project", "", "GCP project ID (default from config)")
	prefix := fs.String("prefix", "", "custom metric prefix (default from config)")
	outDir := fs.String("out", "", "output directory (default <out_dir>/monitoring-json)")
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
	if *outDir == "" {
		*outDir = filepath.Join(cfg.OutDir, "monitoring-json")
	}
	path, err := monitoringjson.Write(req, *outDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}

func runExportTerraform(args []string) error {
	fs, opts := baseFlags("export terraform")
	project := fs.String("project", "", "GCP project ID (default from config)")
	prefix := fs.String("prefix", "", "custom metric prefix (default from config)")
	outDir := fs.String("out", "", "output directory (default <out_dir>/terraform)")
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
	if *outDir == "" {
		*outDir = filepath.Join(cfg.OutDir, "terraform")
	}
	path, err := terraform.Write(req, *outDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}
