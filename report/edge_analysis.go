package report

import (
	"encoding/json"

	"github.com/camilacod/DataVizVastProject/graph"
	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
	"github.com/camilacod/DataVizVastProject/metrics"
)

// EdgeAnalysis is the content of edge_analysis.json, in file key order
type EdgeAnalysis struct {
	EdgeTypeCounts          *metrics.Counts `json:"edge_type_counts" yaml:"edge_type_counts"`
	CreativeInfluences      []string        `json:"creative_influences" yaml:"creative_influences"`
	ProfessionalRoles       []string        `json:"professional_roles" yaml:"professional_roles"`
	BusinessRelationships   []string        `json:"business_relationships" yaml:"business_relationships"`
	TotalCreativeInfluences int             `json:"total_creative_influences" yaml:"total_creative_influences"`
}

// EdgeAnalysisFrom pairs the edge type tally with the fixed category tables
func EdgeAnalysisFrom(r *metrics.Report) EdgeAnalysis {
	return EdgeAnalysis{
		EdgeTypeCounts:          r.EdgeTypes,
		CreativeInfluences:      graph.CreativeInfluences,
		ProfessionalRoles:       graph.ProfessionalRoles,
		BusinessRelationships:   graph.BusinessRelationships,
		TotalCreativeInfluences: r.Influence.CreativeEdges,
	}
}

// WriteEdgeAnalysis writes edge_analysis.json with two-space indentation.
// edge_type_counts keeps first-seen order.
func WriteEdgeAnalysis(path string, e EdgeAnalysis) error {
	if e.EdgeTypeCounts == nil {
		e.EdgeTypeCounts = metrics.NewCounts()
	}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return ioError(err, grapherr.SubcategoryIOWrite, path)
	}
	return writeFile(path, data)
}
