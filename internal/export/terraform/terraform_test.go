package terraform

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bayneri/eventmargin/internal/monitoring"
	"github.com/bayneri/eventmargin/internal/preset"
	"github.com/bayneri/eventmargin/internal/profit"
)

func TestWriteTerraformExport(t *testing.T) {
	req := monitoring.PublishRequest{Project: "demo"}
	for _, slug := range []string{"live-music", "trivia"} {
		p, err := preset.Lookup(slug)
		if err != nil {
			t.Fatalf("lookup: %v", err)
		}
		req.Entries = append(req.Entries, monitoring.Entry{Scenario: slug, Preset: slug, Result: profit.Compute(p.Inputs)})
	}

	dir := t.TempDir()
	path, err := Write(req, dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("expected output in temp dir, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var doc struct {
		Resource map[string]map[string]map[string]interface{} `json:"resource"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse: %v", err)
	}
	descriptors := doc.Resource["google_monitoring_metric_descriptor"]
	if len(descriptors) != len(monitoring.BuildDescriptors("")) {
		t.Fatalf("expected one descriptor per metric, got %d", len(descriptors))
	}
	if descriptors["net_profit"]["type"] != "custom.googleapis.com/eventmargin/net_profit" {
		t.Fatalf("unexpected net_profit descriptor %v", descriptors["net_profit"])
	}

	alerts := doc.Resource["google_monitoring_alert_policy"]
	alert, ok := alerts["loss_live_music"]
	if len(alerts) != 2 || !ok {
		t.Fatalf("expected a loss alert per scenario, got %v", alerts)
	}
	if !strings.Contains(alert["conditions"].([]interface{})[0].(map[string]interface{})["condition_threshold"].(map[string]interface{})["filter"].(string), `metric.label.scenario = "live-music"`) {
		t.Fatalf("alert filter does not select the scenario")
	}
	if _, ok := doc.Resource["google_monitoring_dashboard"]["eventmargin"]; !ok {
		t.Fatalf("expected dashboard resource")
	}
}

func TestWriteRequiresProject(t *testing.T) {
	if _, err := Write(monitoring.PublishRequest{}, t.TempDir()); err == nil {
		t.Fatalf("expected error without project")
	}
}
