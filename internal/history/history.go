package history

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/bayneri/eventmargin/internal/monitoring"
)

const (
	StatusOK    = "ok"
	StatusLoss  = "loss"
	StatusEmpty = "empty"
)

type Options struct {
	Project  string
	Scenario string
	Prefix   string
	Start    string
	End      string
	Last     time.Duration
	Now      time.Time
}

type Reader interface {
	ListPoints(ctx context.Context, project, metricType string, labels map[string]string, start, end time.Time) ([]monitoring.Point, error)
}

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Result struct {
	Project  string             `json:"project"`
	Scenario string             `json:"scenario"`
	Metric   string             `json:"metric"`
	Window   Window             `json:"window"`
	Status   string             `json:"status"`
	Count    int                `json:"count"`
	Min      float64            `json:"min"`
	Max      float64            `json:"max"`
	Latest   float64            `json:"latest"`
	Points   []monitoring.Point `json:"points"`
}

func Run(ctx context.Context, reader Reader, opts Options) (Result, error) {
	if strings.TrimSpace(opts.Project) == "" {
		return Result{}, errors.New("--project is required")
	}
	if strings.TrimSpace(opts.Scenario) == "" {
		return Result{}, errors.New("--scenario is required")
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	start, end, err := ResolveWindow(opts.Start, opts.End, opts.Last, now)
	if err != nil {
		return Result{}, err
	}

	metricType := monitoring.MetricType(opts.Prefix, monitoring.MetricNetProfit)
	points, err := reader.ListPoints(ctx, opts.Project, metricType, map[string]string{monitoring.LabelScenario: opts.Scenario}, start, end)
	if err != nil {
		return Result{}, err
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})

	result := Result{
		Project:  opts.Project,
		Scenario: opts.Scenario,
		Metric:   metricType,
		Window:   Window{Start: start, End: end},
		Count:    len(points),
		Points:   points,
		Status:   StatusEmpty,
	}
	if len(points) == 0 {
		return result, nil
	}

	result.Min = points[0].Value
	result.Max = points[0].Value
	for _, p := range points[1:] {
		if p.Value < result.Min {
			result.Min = p.Value
		}
		if p.Value > result.Max {
			result.Max = p.Value
		}
	}
	result.Latest = points[len(points)-1].Value
	result.Status = StatusOK
	if result.Latest < 0 {
		result.Status = StatusLoss
	}
	return result, nil
}
