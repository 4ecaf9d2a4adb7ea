package monitoringjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"github.com/bayneri/eventmargin/internal/monitoring"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const outputFile = "monitoring.json"

func Write(req monitoring.PublishRequest, outDir string) (string, error) {
	if outDir == "" {
		outDir = filepath.Join("out", "monitoring-json")
	}

	series, err := monitoring.BuildTimeSeries(req)
	if err != nil {
		return "", err
	}

	var descriptors []interface{}
	for _, desc := range monitoring.BuildDescriptors(req.Prefix) {
		item, err := protoToInterface(desc)
		if err != nil {
			return "", err
		}
		descriptors = append(descriptors, item)
	}

	request, err := protoToInterface(&monitoringpb.CreateTimeSeriesRequest{
		Name:       fmt.Sprintf("projects/%s", req.Project),
		TimeSeries: series,
	})
	if err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"metricDescriptors":       descriptors,
		"createTimeSeriesRequest": request,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, outputFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func protoToInterface(msg proto.Message) (interface{}, error) {
	data, err := protojson.Marshal(msg)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
