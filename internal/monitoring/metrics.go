package monitoring

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"github.com/bayneri/eventmargin/internal/profit"
	"google.golang.org/genproto/googleapis/api/label"
	metricpb "google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const DefaultPrefix = "custom.googleapis.com/eventmargin"

const (
	MetricNetProfit       = "net_profit"
	MetricTotalRevenue    = "total_revenue"
	MetricTotalFixedCosts = "total_fixed_costs"
	MetricNetMargin       = "net_margin_percent"
	MetricBreakEvenGuests = "break_even_guests"
)

const (
	LabelScenario = "scenario"
	LabelPreset   = "preset"
)

type metricDef struct {
	name        string
	displayName string
	unit        string
	description string
	value       func(profit.Result) (float64, bool)
}

var metricDefs = []metricDef{
	{
		name:        MetricNetProfit,
		displayName: "Event net profit",
		unit:        "1",
		description: "Projected revenue minus fixed costs for an event scenario.",
		value:       func(r profit.Result) (float64, bool) { return r.NetProfit, true },
	},
	{
		name:        MetricTotalRevenue,
		displayName: "Event total revenue",
		unit:        "1",
		description: "Projected ticket and extra-spend revenue for an event scenario.",
		value:       func(r profit.Result) (float64, bool) { return r.TotalRevenue, true },
	},
	{
		name:        MetricTotalFixedCosts,
		displayName: "Event fixed costs",
		unit:        "1",
		description: "Sum of lost sales, staff, materials and rental costs.",
		value:       func(r profit.Result) (float64, bool) { return r.TotalFixedCosts, true },
	},
	{
		name:        MetricNetMargin,
		displayName: "Event net margin",
		unit:        "%",
		description: "Net profit as a percentage of revenue (unclamped).",
		value:       func(r profit.Result) (float64, bool) { return r.NetMarginPercent, true },
	},
	{
		name:        MetricBreakEvenGuests,
		displayName: "Event break-even guests",
		unit:        "{guest}",
		description: "Guests needed to cover fixed costs. Not written when break-even is unreachable.",
		value: func(r profit.Result) (float64, bool) {
			guests, ok := r.BreakEven.Value()
			return float64(guests), ok
		},
	},
}

type Entry struct {
	Scenario string
	Preset   string
	Result   profit.Result
}

type PublishRequest struct {
	Project string
	Prefix  string
	Time    time.Time
	Entries []Entry
}

func MetricType(prefix, name string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return strings.TrimSuffix(prefix, "/") + "/" + name
}

func BuildDescriptors(prefix string) []*metricpb.MetricDescriptor {
	var out []*metricpb.MetricDescriptor
	for _, def := range metricDefs {
		out = append(out, &metricpb.MetricDescriptor{
			Type:        MetricType(prefix, def.name),
			MetricKind:  metricpb.MetricDescriptor_GAUGE,
			ValueType:   metricpb.MetricDescriptor_DOUBLE,
			Unit:        def.unit,
			Description: def.description,
			DisplayName: def.displayName,
			Labels: []*label.LabelDescriptor{
				{Key: LabelScenario, ValueType: label.LabelDescriptor_STRING, Description: "Scenario name."},
				{Key: LabelPreset, ValueType: label.LabelDescriptor_STRING, Description: "Preset the scenario started from."},
			},
		})
	}
	return out
}

func BuildTimeSeries(req PublishRequest) ([]*monitoringpb.TimeSeries, error) {
	if strings.TrimSpace(req.Project) == "" {
		return nil, fmt.Errorf("project is required")
	}
	now := req.Time
	if now.IsZero() {
		now = time.Now().UTC()
	}
	seen := map[string]bool{}
	var series []*monitoringpb.TimeSeries
	for _, entry := range req.Entries {
		if strings.TrimSpace(entry.Scenario) == "" {
			return nil, fmt.Errorf("scenario name is required")
		}
		if seen[entry.Scenario] {
			return nil, fmt.Errorf("scenario %q listed more than once", entry.Scenario)
		}
		seen[entry.Scenario] = true

		for _, def := range metricDefs {
			value, ok := def.value(entry.Result)
			if !ok {
				continue
			}
			series = append(series, &monitoringpb.TimeSeries{
				Metric: &metricpb.Metric{
					Type: MetricType(req.Prefix, def.name),
					Labels: map[string]string{
						LabelScenario: entry.Scenario,
						LabelPreset:   entry.Preset,
					},
				},
				Resource: &monitoredres.MonitoredResource{
					Type:   "global",
					Labels: map[string]string{"project_id": req.Project},
				},
				MetricKind: metricpb.MetricDescriptor_GAUGE,
				ValueType:  metricpb.MetricDescriptor_DOUBLE,
				Points: []*monitoringpb.Point{{
					Interval: &monitoringpb.TimeInterval{EndTime: timestamppb.New(now)},
					Value: &monitoringpb.TypedValue{
						Value: &monitoringpb.TypedValue_DoubleValue{DoubleValue: value},
					},
				}},
			})
		}
	}
	return series, nil
}

func BuildFilter(metricType string, labels map[string]string) string {
	parts := []string{fmt.Sprintf("metric.type = %q", metricType)}
	var keys []string
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("metric.label.%s = %q", k, labels[k]))
	}
	return strings.Join(parts, " AND ")
}
