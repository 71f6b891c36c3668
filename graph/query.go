package graph

// Nodes returns the nodes in document order. The slice must not be modified.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Edges returns the edges in document order. The slice must not be modified.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, parallel edges counted separately
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Node looks up a node by id
func (g *Graph) Node(id string) (Node, bool) {
	pos, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[pos], true
}

// HasNode reports whether id is a node of the graph
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// InDegree counts edges entering id
func (g *Graph) InDegree(id string) int {
	if pos, ok := g.index[id]; ok {
		return len(g.in[pos])
	}
	return 0
}

// OutDegree counts edges leaving id
func (g *Graph) OutDegree(id string) int {
	if pos, ok := g.index[id]; ok {
		return len(g.out[pos])
	}
	return 0
}

// Degree is in-degree plus out-degree; a self-loop counts twice
func (g *Graph) Degree(id string) int {
	return g.InDegree(id) + g.OutDegree(id)
}

// OutEdges returns the edges leaving id, in document order
func (g *Graph) OutEdges(id string) []Edge {
	pos, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.edgesAt(g.out[pos])
}

// InEdges returns the edges entering id, in document order
func (g *Graph) InEdges(id string) []Edge {
	pos, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.edgesAt(g.in[pos])
}

// Successors returns the distinct targets of edges leaving id, first-seen order
func (g *Graph) Successors(id string) []string {
	return distinct(g.OutEdges(id), func(e Edge) string { return e.Target })
}

// Predecessors returns the distinct sources of edges entering id, first-seen order
func (g *Graph) Predecessors(id string) []string {
	return distinct(g.InEdges(id), func(e Edge) string { return e.Source })
}

// Filter builds the subgraph holding exactly the edges that satisfy keep and
// the nodes those edges touch. Node attributes are shared with g.
func (g *Graph) Filter(keep func(Edge) bool) *Graph {
	b := newBuilder(MissingNodesCreate, nil)
	b.g.Directed = g.Directed
	b.g.Multigraph = g.Multigraph

	for _, e := range g.edges {
		if !keep(e) {
			continue
		}
		for _, id := range []string{e.Source, e.Target} {
			if _, ok := b.g.index[id]; !ok {
				n := g.nodes[g.index[id]]
				b.g.index[id] = len(b.g.nodes)
				b.g.nodes = append(b.g.nodes, n)
			}
		}
		b.addEdge(e)
	}
	return b.freeze()
}

// Simple collapses parallel edges, keeping the first edge of each ordered
// (source, target) pair. All nodes are kept.
func (g *Graph) Simple() *Graph {
	b := newBuilder(MissingNodesStrict, nil)
	b.g.Directed = g.Directed
	b.g.nodes = append(b.g.nodes, g.nodes...)
	for id, pos := range g.index {
		b.g.index[id] = pos
	}

	seen := make(map[[2]string]bool)
	for _, e := range g.edges {
		pair := [2]string{e.Source, e.Target}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		b.addEdge(e)
	}
	return b.freeze()
}

// Density is m / (n(n-1)) with parallel edges counted as-is, 0 when n <= 1
func (g *Graph) Density() float64 {
	return Density(len(g.nodes), len(g.edges))
}

// Density computes directed density from the two scalars alone
func Density(nodeCount, edgeCount int) float64 {
	if nodeCount <= 1 {
		return 0
	}
	return float64(edgeCount) / (float64(nodeCount) * float64(nodeCount-1))
}

func (g *Graph) edgesAt(positions []int) []Edge {
	result := make([]Edge, len(positions))
	for i, p := range positions {
		result[i] = g.edges[p]
	}
	return result
}

func distinct(edges []Edge, key func(Edge) string) []string {
	seen := make(map[string]bool, len(edges))
	var result []string
	for _, e := range edges {
		k := key(e)
		if !seen[k] {
			seen[k] = true
			result = append(result, k)
		}
	}
	return result
}
