package graph

// Graph is an immutable directed multigraph decoded from a node-link document.
// Nodes and edges keep document order; parallel edges are distinct entries.
type Graph struct {
	Directed   bool // as declared by the document; analysis always treats edges as directed
	Multigraph bool

	nodes []Node
	edges []Edge
	index map[string]int // node id -> position in nodes
	out   [][]int        // node position -> edge positions leaving it
	in    [][]int        // node position -> edge positions entering it
}

// Node is a graph vertex with its type tag and remaining attributes
type Node struct {
	ID    string
	Type  string                 // "Node Type" attribute, or Unknown
	Attrs map[string]interface{} // every attribute except id
}

// Edge is a directed, typed relationship between two node ids
type Edge struct {
	Source string
	Target string
	Type   string                 // "Edge Type" attribute, or Unknown
	Attrs  map[string]interface{} // every attribute except source and target
}

// Attr returns a node attribute
func (n Node) Attr(key string) (interface{}, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// String returns a string attribute, or "" when absent or not a string
func (n Node) String(key string) string {
	if s, ok := n.Attrs[key].(string); ok {
		return s
	}
	return ""
}

// Bool returns a boolean attribute and whether it was present as a boolean
func (n Node) Bool(key string) (bool, bool) {
	b, ok := n.Attrs[key].(bool)
	return b, ok
}

// Name returns the human-readable label of a node (name, falling back to stage_name)
func (n Node) Name() string {
	if name := n.String("name"); name != "" {
		return name
	}
	return n.String("stage_name")
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
}

// Stats returns node and edge totals
func (g *Graph) Stats() Stats {
	return Stats{TotalNodes: len(g.nodes), TotalEdges: len(g.edges)}
}
