package report

import (
	"bytes"
	"encoding/json"
	"os"

	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
	"github.com/camilacod/DataVizVastProject/metrics"
)

// NetworkMetrics is the content of network_metrics.json, in file key order
type NetworkMetrics struct {
	NodeCount                   int     `json:"node_count" yaml:"node_count"`
	EdgeCount                   int     `json:"edge_count" yaml:"edge_count"`
	Density                     float64 `json:"density" yaml:"density"`
	WeaklyConnectedComponents   int     `json:"weakly_connected_components" yaml:"weakly_connected_components"`
	StronglyConnectedComponents int     `json:"strongly_connected_components" yaml:"strongly_connected_components"`
	LargestWCCSize              int     `json:"largest_wcc_size" yaml:"largest_wcc_size"`
	LargestSCCSize              int     `json:"largest_scc_size" yaml:"largest_scc_size"`
}

// NetworkMetricsFrom selects the scalar metrics from a report
func NetworkMetricsFrom(r *metrics.Report) NetworkMetrics {
	return NetworkMetrics{
		NodeCount:                   r.Overview.NodeCount,
		EdgeCount:                   r.Overview.EdgeCount,
		Density:                     r.Overview.Density,
		WeaklyConnectedComponents:   r.Connectivity.Weak.Count,
		StronglyConnectedComponents: r.Connectivity.Strong.Count,
		LargestWCCSize:              r.Connectivity.Weak.Largest,
		LargestSCCSize:              r.Connectivity.Strong.Largest,
	}
}

// WriteNetworkMetrics writes network_metrics.json with two-space indentation
func WriteNetworkMetrics(path string, m NetworkMetrics) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return ioError(err, grapherr.SubcategoryIOWrite, path)
	}
	return writeFile(path, data)
}

// ReadNetworkMetrics reads back a network_metrics.json written by WriteNetworkMetrics
func ReadNetworkMetrics(path string) (*NetworkMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, grapherr.New(grapherr.CategoryParse, err, "Cannot open the metrics file").
			WithSubcategory(grapherr.SubcategoryParseOpen).
			WithStage(grapherr.StageLoad).
			WithPath(path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var m NetworkMetrics
	if err := dec.Decode(&m); err != nil {
		return nil, grapherr.New(grapherr.CategoryParse, err, "Metrics file is not valid").
			WithSubcategory(grapherr.SubcategoryParseSyntax).
			WithStage(grapherr.StageLoad).
			WithPath(path)
	}
	return &m, nil
}
