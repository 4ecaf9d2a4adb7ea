package monitoring

import (
	"context"
	"strings"
	"testing"

	"cloud.google.com/go/monitoring/dashboard/apiv1/dashboardpb"
)

type fakeDashboards struct {
	project string
	applied *dashboardpb.Dashboard
}

func (f *fakeDashboards) UpsertDashboard(ctx context.Context, project string, d *dashboardpb.Dashboard) error {
	f.project = project
	f.applied = d
	return nil
}

func TestBuildDashboard(t *testing.T) {
	d := BuildDashboard("custom.googleapis.com/gigs")
	tiles := d.GetMosaicLayout().GetTiles()
	if len(tiles) != len(metricDefs)+1 {
		t.Fatalf("expected %d tiles, got %d", len(metricDefs)+1, len(tiles))
	}
	if d.GetLabels()["managed-by"] != "eventmargin" {
		t.Fatalf("missing managed-by label: %v", d.GetLabels())
	}

	var sawProfit bool
	for _, tl := range tiles[1:] {
		chart := tl.GetWidget().GetXyChart()
		if chart == nil {
			t.Fatalf("expected chart widget, got %v", tl.GetWidget())
		}
		filter := chart.GetDataSets()[0].GetTimeSeriesQuery().GetTimeSeriesFilter().GetFilter()
		if !strings.Contains(filter, `"custom.googleapis.com/gigs/`) {
			t.Fatalf("chart filter ignores prefix: %s", filter)
		}
		if strings.Contains(filter, "/"+MetricNetProfit+`"`) {
			sawProfit = true
			if len(chart.GetThresholds()) != 1 || chart.GetThresholds()[0].GetValue() != 0 {
				t.Fatalf("expected zero threshold on profit chart, got %v", chart.GetThresholds())
			}
		}
	}
	if !sawProfit {
		t.Fatalf("expected a net profit chart")
	}
}

func TestApplyDashboard(t *testing.T) {
	w := &fakeDashboards{}
	if err := ApplyDashboard(context.Background(), w, "", ""); err == nil {
		t.Fatalf("expected error without project")
	}
	if err := ApplyDashboard(context.Background(), w, "demo", ""); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if w.project != "demo" || w.applied.GetDisplayName() != DashboardDisplayName {
		t.Fatalf("unexpected upsert %s %v", w.project, w.applied.GetDisplayName())
	}
}

func TestBuildDashboardJSON(t *testing.T) {
	text, err := BuildDashboardJSON("")
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(text, DefaultPrefix+"/"+MetricBreakEvenGuests) {
		t.Fatalf("expected default prefix in dashboard json")
	}
}
