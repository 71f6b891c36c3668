package metrics

import (
	"github.com/camilacod/DataVizVastProject/extract"
	"github.com/camilacod/DataVizVastProject/graph"
)

// Options tunes listing sizes
type Options struct {
	TopN           int // nodes listed by in/out degree
	TopGenres      int // genres listed
	TimelineGenres int // genres tracked per release year
}

// DefaultOptions mirrors the configuration defaults
func DefaultOptions() Options {
	return Options{TopN: 10, TopGenres: 10, TimelineGenres: 5}
}

// Aggregate computes every section of the report. Each section is
// independent and reads only the graph and the extracted tables.
func Aggregate(g *graph.Graph, tables extract.Tables, opts Options) *Report {
	edgeTypes := EdgeTypeCounts(tables.Edges)
	genres := GenresOf(tables.Works, opts.TopGenres)
	temporal, quality := TemporalOf(tables.Works, genres.Counts, opts.TimelineGenres)

	return &Report{
		Overview: Overview{
			NodeCount:  g.NodeCount(),
			EdgeCount:  g.EdgeCount(),
			Density:    g.Density(),
			Directed:   g.Directed,
			Multigraph: g.Multigraph,
		},
		NodeTypes:    NodeTypeCounts(g),
		EdgeTypes:    edgeTypes,
		Categories:   CategoryCounts(edgeTypes),
		Notability:   NotabilityOf(tables.Works),
		Genres:       genres,
		Temporal:     temporal,
		Connectivity: ConnectivityOf(g),
		Degree:       DegreeOf(g, opts.TopN),
		Influence:    InfluenceOf(g, tables),
		DataQuality:  quality,
	}
}
