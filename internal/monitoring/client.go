package monitoring

import (
	"context"
	"time"

	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	metricpb "google.golang.org/genproto/googleapis/api/metric"
)

type Writer interface {
	EnsureDescriptors(ctx context.Context, project string, descriptors []*metricpb.MetricDescriptor) error
	WriteTimeSeries(ctx context.Context, project string, series []*monitoringpb.TimeSeries) error
}

type Point struct {
	Time   time.Time
	Value  float64
	Labels map[string]string
}
