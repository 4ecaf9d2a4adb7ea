package monitoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	dashboard "cloud.google.com/go/monitoring/dashboard/apiv1"
	"cloud.google.com/go/monitoring/dashboard/apiv1/dashboardpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	metricpb "google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GCPClient struct {
	metricClient *monitoring.MetricClient
	dashClient   *dashboard.DashboardsClient
}

func NewGCPClient(ctx context.Context, opts ...option.ClientOption) (*GCPClient, error) {
	metricClient, err := monitoring.NewMetricClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create metric client: %w", err)
	}
	dashClient, err := dashboard.NewDashboardsClient(ctx, opts...)
	if err != nil {
		metricClient.Close()
		return nil, fmt.Errorf("create dashboards client: %w", err)
	}
	return &GCPClient{metricClient: metricClient, dashClient: dashClient}, nil
}

func (c *GCPClient) Close() error {
	var errs []string
	if err := c.metricClient.Close(); err != nil {
		errs = append(errs, err.Error())
	}
	if err := c.dashClient.Close(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("close clients: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (c *GCPClient) EnsureDescriptors(ctx context.Context, project string, descriptors []*metricpb.MetricDescriptor) error {
	for _, desc := range descriptors {
		name := fmt.Sprintf("projects/%s/metricDescriptors/%s", project, desc.GetType())
		_, err := c.metricClient.GetMetricDescriptor(ctx, &monitoringpb.GetMetricDescriptorRequest{Name: name})
		if err == nil {
			continue
		}
		if status.Code(err) != codes.NotFound {
			return err
		}
		_, err = c.metricClient.CreateMetricDescriptor(ctx, &monitoringpb.CreateMetricDescriptorRequest{
			Name:             fmt.Sprintf("projects/%s", project),
			MetricDescriptor: desc,
		})
		if err != nil {
			return fmt.Errorf("create descriptor %s: %w", desc.GetType(), err)
		}
	}
	return nil
}

func (c *GCPClient) WriteTimeSeries(ctx context.Context, project string, series []*monitoringpb.TimeSeries) error {
	return c.metricClient.CreateTimeSeries(ctx, &monitoringpb.CreateTimeSeriesRequest{
		Name:       fmt.Sprintf("projects/%s", project),
		TimeSeries: series,
	})
}

func (c *GCPClient) ListPoints(ctx context.Context, project, metricType string, labels map[string]string, start, end time.Time) ([]Point, error) {
	req := &monitoringpb.ListTimeSeriesRequest{
		Name:   fmt.Sprintf("projects/%s", project),
		Filter: BuildFilter(metricType, labels),
		Interval: &monitoringpb.TimeInterval{
			StartTime: timestamppb.New(start),
			EndTime:   timestamppb.New(end),
		},
		View: monitoringpb.ListTimeSeriesRequest_FULL,
	}

	var out []Point
	iter := c.metricClient.ListTimeSeries(ctx, req)
	for {
		ts, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, point := range ts.GetPoints() {
			out = append(out, Point{
				Time:   point.GetInterval().GetEndTime().AsTime(),
				Value:  pointValue(point.GetValue()),
				Labels: ts.GetMetric().GetLabels(),
			})
		}
	}
	return out, nil
}

func (c *GCPClient) UpsertDashboard(ctx context.Context, project string, d *dashboardpb.Dashboard) error {
	existing, err := c.findDashboard(ctx, project, d.GetDisplayName())
	if err != nil {
		return err
	}
	if existing != nil {
		d.Name = existing.Name
		d.Etag = existing.Etag
		_, err = c.dashClient.UpdateDashboard(ctx, &dashboardpb.UpdateDashboardRequest{Dashboard: d})
		return err
	}
	_, err = c.dashClient.CreateDashboard(ctx, &dashboardpb.CreateDashboardRequest{
		Parent:    fmt.Sprintf("projects/%s", project),
		Dashboard: d,
	})
	return err
}

func (c *GCPClient) findDashboard(ctx context.Context, project, displayName string) (*dashboardpb.Dashboard, error) {
	iter := c.dashClient.ListDashboards(ctx, &dashboardpb.ListDashboardsRequest{Parent: fmt.Sprintf("projects/%s", project)})
	for {
		d, err := iter.Next()
		if err == iterator.Done {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if d.GetDisplayName() == displayName {
			return d, nil
		}
	}
}

func pointValue(value *monitoringpb.TypedValue) float64 {
	switch v := value.GetValue().(type) {
	case *monitoringpb.TypedValue_DoubleValue:
		return v.DoubleValue
	case *monitoringpb.TypedValue_Int64Value:
		return float64(v.Int64Value)
	default:
		return value.GetDoubleValue()
	}
}
