package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bayneri/eventmargin/internal/monitoring"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "€" {
		t.Fatalf("expected default currency, got %q", cfg.Currency)
	}
	if cfg.MetricPrefix != monitoring.DefaultPrefix {
		t.Fatalf("expected default prefix, got %q", cfg.MetricPrefix)
	}
	if cfg.DefaultPreset != "live-music" || cfg.OutDir != "out" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventmargin.yaml")
	data := "currency: \"£\"\nproject: pub-analytics\ndefault_preset: trivia\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("EVENTMARGIN_PROJECT", "override-project")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Currency != "£" {
		t.Fatalf("expected file currency, got %q", cfg.Currency)
	}
	if cfg.Project != "override-project" {
		t.Fatalf("expected env override, got %q", cfg.Project)
	}
	if cfg.DefaultPreset != "trivia" {
		t.Fatalf("expected trivia, got %q", cfg.DefaultPreset)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventmargin.yaml")
	data := "currency: \"\"\nmetric_prefix: eventmargin\ndefault_preset: karaoke\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"currency", "metric_prefix", "default_preset"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}
