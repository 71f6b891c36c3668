package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/camilacod/DataVizVastProject/graph"
)

// unnamed labels nodes without a name attribute in rankings
const unnamed = "Unknown"

// DegreeOf computes in/out/total degree summaries over every node, the
// top nodes by in- and out-degree, and the mean total degree per type.
// Parallel edges count separately.
func DegreeOf(g *graph.Graph, topN int) DegreeStats {
	nodes := g.Nodes()
	in := make([]int, len(nodes))
	out := make([]int, len(nodes))
	total := make([]int, len(nodes))
	for i, n := range nodes {
		in[i] = g.InDegree(n.ID)
		out[i] = g.OutDegree(n.ID)
		total[i] = in[i] + out[i]
	}

	return DegreeStats{
		In:         summarize(toFloats(in)),
		Out:        summarize(toFloats(out)),
		Total:      summarize(toFloats(total)),
		TopIn:      topByDegree(nodes, in, topN),
		TopOut:     topByDegree(nodes, out, topN),
		MeanByType: meanByType(nodes, total),
	}
}

// topByDegree ranks nodes by degree descending; ties keep node order
func topByDegree(nodes []graph.Node, degrees []int, n int) []RankedNode {
	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return degrees[order[a]] > degrees[order[b]]
	})
	if n >= 0 && n < len(order) {
		order = order[:n]
	}

	result := make([]RankedNode, len(order))
	for i, pos := range order {
		node := nodes[pos]
		name := node.Name()
		if name == "" {
			name = unnamed
		}
		result[i] = RankedNode{ID: node.ID, Name: name, Type: node.Type, Degree: degrees[pos]}
	}
	return result
}

// meanByType averages total degree within each node type, in first-seen type order
func meanByType(nodes []graph.Node, total []int) []TypeDegree {
	var types []string
	byType := make(map[string][]float64)
	for i, n := range nodes {
		if _, ok := byType[n.Type]; !ok {
			types = append(types, n.Type)
		}
		byType[n.Type] = append(byType[n.Type], float64(total[i]))
	}

	result := make([]TypeDegree, 0, len(types))
	for _, t := range types {
		values := byType[t]
		result = append(result, TypeDegree{Type: t, Nodes: len(values), Mean: stat.Mean(values, nil)})
	}
	return result
}
