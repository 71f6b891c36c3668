package metrics

import (
	"github.com/camilacod/DataVizVastProject/extract"
	"github.com/camilacod/DataVizVastProject/graph"
	"github.com/camilacod/DataVizVastProject/internal/util"
)

// InfluenceOf relates creative-influence edges to the notable flag.
// Endpoints outside the Songs/Albums partition (People, labels, groups)
// are not counted on either side.
func InfluenceOf(g *graph.Graph, tables extract.Tables) Influence {
	notable, nonNotable := tables.Partition()

	inf := Influence{
		Notable:                InfluenceSide{Works: len(notable)},
		NonNotable:             InfluenceSide{Works: len(nonNotable)},
		ReceivedByNotableTypes: NewCounts(),
	}

	for _, e := range g.Edges() {
		if !graph.IsCreativeInfluence(e) {
			continue
		}
		inf.CreativeEdges++

		switch {
		case notable[e.Target]:
			inf.Notable.Received++
			inf.ReceivedByNotableTypes.Add(e.Type)
		case nonNotable[e.Target]:
			inf.NonNotable.Received++
		}

		switch {
		case notable[e.Source]:
			inf.Notable.Given++
		case nonNotable[e.Source]:
			inf.NonNotable.Given++
		}
	}

	for _, side := range []*InfluenceSide{&inf.Notable, &inf.NonNotable} {
		side.AvgReceived = util.Ratio(side.Received, side.Works)
		side.AvgGiven = util.Ratio(side.Given, side.Works)
	}

	// Distinct (source, target) pairs, like a simple digraph
	sub := g.Filter(graph.IsCreativeInfluence).Simple()
	inf.SubgraphNodes = sub.NodeCount()
	inf.SubgraphEdges = sub.EdgeCount()

	var predecessors []int
	for _, w := range tables.Works {
		if w.Notable && sub.HasNode(w.ID) {
			predecessors = append(predecessors, len(sub.Predecessors(w.ID)))
		}
	}
	inf.NotablePredecessors = summarize(toFloats(predecessors))

	return inf
}
