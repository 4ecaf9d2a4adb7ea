package terraform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bayneri/eventmargin/internal/monitoring"
	metricpb "google.golang.org/genproto/googleapis/api/metric"
)

const outputFile = "main.tf.json"

func Write(req monitoring.PublishRequest, outDir string) (string, error) {
	if strings.TrimSpace(req.Project) == "" {
		return "", fmt.Errorf("project is required")
	}
	if outDir == "" {
		outDir = filepath.Join("out", "terraform")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	dashboardJSON, err := monitoring.BuildDashboardJSON(req.Prefix)
	if err != nil {
		return "", err
	}

	cfg := map[string]interface{}{
		"terraform": map[string]interface{}{
			"required_providers": map[string]interface{}{
				"google": map[string]interface{}{
					"source":  "hashicorp/google",
					"version": ">= 5.0",
				},
			},
		},
		"provider": map[string]interface{}{
			"google": map[string]interface{}{
				"project": req.Project,
			},
		},
		"resource": buildResources(req, dashboardJSON),
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')
	path := filepath.Join(outDir, outputFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func buildResources(req monitoring.PublishRequest, dashboardJSON string) map[string]map[string]interface{} {
	resources := map[string]map[string]interface{}{}

	descriptors := map[string]interface{}{}
	profitRef := ""
	for _, desc := range monitoring.BuildDescriptors(req.Prefix) {
		name := tfName("metric", desc.GetType()[strings.LastIndex(desc.GetType(), "/")+1:])
		descriptors[name] = buildDescriptorResource(req.Project, desc)
		if desc.GetType() == monitoring.MetricType(req.Prefix, monitoring.MetricNetProfit) {
			profitRef = "google_monitoring_metric_descriptor." + name
		}
	}
	resources["google_monitoring_metric_descriptor"] = descriptors

	alerts := map[string]interface{}{}
	for _, entry := range req.Entries {
		alerts[tfName("loss", "loss_"+entry.Scenario)] = buildLossAlert(req, entry.Scenario, profitRef)
	}
	if len(alerts) > 0 {
		resources["google_monitoring_alert_policy"] = alerts
	}

	resources["google_monitoring_dashboard"] = map[string]interface{}{
		"eventmargin": map[string]interface{}{
			"project":        req.Project,
			"dashboard_json": dashboardJSON,
		},
	}
	return resources
}

func buildDescriptorResource(project string, desc *metricpb.MetricDescriptor) map[string]interface{} {
	var labels []map[string]interface{}
	for _, l := range desc.GetLabels() {
		labels = append(labels, map[string]interface{}{
			"key":         l.GetKey(),
			"value_type":  l.GetValueType().String(),
			"description": l.GetDescription(),
		})
	}
	return map[string]interface{}{
		"project":      project,
		"type":         desc.GetType(),
		"metric_kind":  desc.GetMetricKind().String(),
		"value_type":   desc.GetValueType().String(),
		"unit":         desc.GetUnit(),
		"description":  desc.GetDescription(),
		"display_name": desc.GetDisplayName(),
		"labels":       labels,
	}
}

func buildLossAlert(req monitoring.PublishRequest, scenario, profitRef string) map[string]interface{} {
	metricType := monitoring.MetricType(req.Prefix, monitoring.MetricNetProfit)
	filter := monitoring.BuildFilter(metricType, map[string]string{monitoring.LabelScenario: scenario}) + ` AND resource.type = "global"`
	resource := map[string]interface{}{
		"project":      req.Project,
		"display_name": fmt.Sprintf("%s projected loss", scenario),
		"combiner":     "OR",
		"documentation": map[string]interface{}{
			"content":   fmt.Sprintf("The latest estimate for %s is below zero. Run `eventmargin calc` with the scenario to see the advice.", scenario),
			"mime_type": "text/markdown",
		},
		"conditions": []map[string]interface{}{{
			"display_name": fmt.Sprintf("%s net profit below zero", scenario),
			"condition_threshold": map[string]interface{}{
				"filter":                  filter,
				"comparison":              "COMPARISON_LT",
				"threshold_value":         0,
				"duration":                "0s",
				"evaluation_missing_data": "EVALUATION_MISSING_DATA_NO_OP",
			},
		}},
		"user_labels": map[string]string{"managed-by": "eventmargin"},
		"enabled":     true,
		"severity":    "WARNING",
	}
	if profitRef != "" {
		resource["depends_on"] = []string{profitRef}
	}
	return resource
}

func tfName(prefix, value string) string {
	var out []rune
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	if len(out) == 0 || (out[0] >= '0' && out[0] <= '9') {
		return fmt.Sprintf("%s_%s", prefix, string(out))
	}
	return string(out)
}
