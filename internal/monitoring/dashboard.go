package monitoring

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/monitoring/dashboard/apiv1/dashboardpb"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/durationpb"
)

const DashboardDisplayName = "eventmargin estimates"

var dashboardLabels = map[string]string{"managed-by": "eventmargin"}

type DashboardWriter interface {
	UpsertDashboard(ctx context.Context, project string, dashboard *dashboardpb.Dashboard) error
}

func ApplyDashboard(ctx context.Context, w DashboardWriter, project, prefix string) error {
	if project == "" {
		return fmt.Errorf("project is required")
	}
	if err := w.UpsertDashboard(ctx, project, BuildDashboard(prefix)); err != nil {
		return fmt.Errorf("apply dashboard: %w", err)
	}
	return nil
}

func BuildDashboard(prefix string) *dashboardpb.Dashboard {
	columns := int32(12)
	tiles := []*dashboardpb.MosaicLayout_Tile{
		tile(0, 0, columns, 2, dashboardIntro()),
	}
	y := int32(2)
	for i, def := range metricDefs {
		x := int32(0)
		if i%2 == 1 {
			x = columns / 2
		}
		row := int32(i / 2)
		tiles = append(tiles, tile(x, y+row*4, columns/2, 4, metricChart(prefix, def)))
	}

	labels := map[string]string{}
	for k, v := range dashboardLabels {
		labels[k] = v
	}
	return &dashboardpb.Dashboard{
		DisplayName: DashboardDisplayName,
		Labels:      labels,
		Layout: &dashboardpb.Dashboard_MosaicLayout{
			MosaicLayout: &dashboardpb.MosaicLayout{
				Columns: columns,
				Tiles:   tiles,
			},
		},
	}
}

func BuildDashboardJSON(prefix string) (string, error) {
	data, err := protojson.Marshal(BuildDashboard(prefix))
	if err != nil {
		return "", fmt.Errorf("encode dashboard: %w", err)
	}
	return string(data), nil
}

func metricChart(prefix string, def metricDef) *dashboardpb.Widget {
	query := &dashboardpb.TimeSeriesQuery{
		Source: &dashboardpb.TimeSeriesQuery_TimeSeriesFilter{
			TimeSeriesFilter: &dashboardpb.TimeSeriesFilter{
				Filter: fmt.Sprintf("metric.type=%q AND resource.type=%q", MetricType(prefix, def.name), "global"),
				Aggregation: &dashboardpb.Aggregation{
					AlignmentPeriod:  durationpb.New(300 * time.Second),
					PerSeriesAligner: dashboardpb.Aggregation_ALIGN_MEAN,
				},
			},
		},
	}
	chart := &dashboardpb.XyChart{
		DataSets: []*dashboardpb.XyChart_DataSet{{
			TimeSeriesQuery: query,
			PlotType:        dashboardpb.XyChart_DataSet_LINE,
			LegendTemplate:  "${metric.labels.scenario}",
		}},
		YAxis: &dashboardpb.XyChart_Axis{
			Label: def.unit,
			Scale: dashboardpb.XyChart_Axis_LINEAR,
		},
	}
	if def.name == MetricNetProfit || def.name == MetricNetMargin {
		chart.Thresholds = []*dashboardpb.Threshold{{Label: "break-even", Value: 0}}
	}
	return &dashboardpb.Widget{
		Title:   def.displayName,
		Content: &dashboardpb.Widget_XyChart{XyChart: chart},
	}
}

func tile(x, y, width, height int32, widget *dashboardpb.Widget) *dashboardpb.MosaicLayout_Tile {
	return &dashboardpb.MosaicLayout_Tile{
		XPos:   x,
		YPos:   y,
		Width:  width,
		Height: height,
		Widget: widget,
	}
}

func dashboardIntro() *dashboardpb.Widget {
	return &dashboardpb.Widget{
		Content: &dashboardpb.Widget_Text{
			Text: &dashboardpb.Text{
				Content: "# Event estimates\nPublished by `eventmargin publish`. Lines below zero on the profit chart are events projected to lose money.",
				Format:  dashboardpb.Text_MARKDOWN,
			},
		},
	}
}
