package monitoringjson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bayneri/eventmargin/internal/monitoring"
	"github.com/bayneri/eventmargin/internal/profit"
)

func TestWrite(t *testing.T) {
	result := profit.Compute(profit.Inputs{
		Guests:        100,
		ExtraSpend:    18,
		LostSalesCost: 100,
		StaffWages:    300,
		MaterialsCost: 150,
		RentalCost:    50,
	})
	dir := filepath.Join(t.TempDir(), "export")
	path, err := Write(monitoring.PublishRequest{
		Project: "demo",
		Time:    time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC),
		Entries: []monitoring.Entry{{Scenario: "quiz", Preset: "trivia", Result: result}},
	}, dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, "monitoring.json") {
		t.Fatalf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var payload struct {
		MetricDescriptors []map[string]interface{} `json:"metricDescriptors"`
		Request           struct {
			Name       string                   `json:"name"`
			TimeSeries []map[string]interface{} `json:"timeSeries"`
		} `json:"createTimeSeriesRequest"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(payload.MetricDescriptors) != 5 {
		t.Fatalf("expected 5 descriptors, got %d", len(payload.MetricDescriptors))
	}
	if payload.Request.Name != "projects/demo" {
		t.Fatalf("unexpected request name %q", payload.Request.Name)
	}
	if len(payload.Request.TimeSeries) != 5 {
		t.Fatalf("expected 5 time series, got %d", len(payload.Request.TimeSeries))
	}
}

func TestWriteRequiresProject(t *testing.T) {
	if _, err := Write(monitoring.PublishRequest{}, t.TempDir()); err == nil {
		t.Fatalf("expected error")
	}
}
