package metrics

import (
	"sort"

	"github.com/camilacod/DataVizVastProject/graph"
	"github.com/camilacod/DataVizVastProject/internal/util"
)

// ConnectivityOf summarizes the weak and strong component partitions
func ConnectivityOf(g *graph.Graph) Connectivity {
	return Connectivity{
		Weak:   componentStats(g.WeakComponents(), g.NodeCount()),
		Strong: componentStats(g.StrongComponents(), g.NodeCount()),
	}
}

func componentStats(parts [][]string, nodeCount int) ComponentStats {
	sizes := graph.ComponentSizes(parts)
	largest := graph.LargestComponent(parts)
	return ComponentStats{
		Count:          len(parts),
		Sizes:          sizes,
		Largest:        largest,
		LargestPercent: util.Percent(largest, nodeCount),
		Histogram:      sizeHistogram(sizes),
	}
}

// sizeHistogram counts components per size, ascending by size
func sizeHistogram(sizes []int) []SizeCount {
	bySize := make(map[int]int)
	for _, s := range sizes {
		bySize[s]++
	}
	result := make([]SizeCount, 0, len(bySize))
	for size, n := range bySize {
		result = append(result, SizeCount{Size: size, Components: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Size < result[j].Size })
	return result
}
