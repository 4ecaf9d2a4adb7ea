package monitoring

import (
	"context"
	"fmt"
)

// MaxSeriesPerRequest is the Cloud Monitoring limit for CreateTimeSeries.
const MaxSeriesPerRequest = 200

type PublishResult struct {
	Series  int
	Batches int
}

func Publish(ctx context.Context, w Writer, req PublishRequest) (PublishResult, error) {
	series, err := BuildTimeSeries(req)
	if err != nil {
		return PublishResult{}, err
	}
	if err := w.EnsureDescriptors(ctx, req.Project, BuildDescriptors(req.Prefix)); err != nil {
		return PublishResult{}, fmt.Errorf("ensure metric descriptors: %w", err)
	}

	result := PublishResult{Series: len(series)}
	for start := 0; start < len(series); start += MaxSeriesPerRequest {
		end := start + MaxSeriesPerRequest
		if end > len(series) {
			end = len(series)
		}
		if err := w.WriteTimeSeries(ctx, req.Project, series[start:end]); err != nil {
			return result, fmt.Errorf("write time series batch %d: %w", result.Batches+1, err)
		}
		result.Batches++
	}
	return result, nil
}
