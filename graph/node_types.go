package graph

// Node types of the musical influence dataset
const (
	NodeTypePerson       = "Person"
	NodeTypeSong         = "Song"
	NodeTypeRecordLabel  = "RecordLabel"
	NodeTypeAlbum        = "Album"
	NodeTypeMusicalGroup = "MusicalGroup"
)

// NodeTypes lists the known node types in display order
var NodeTypes = []string{
	NodeTypePerson,
	NodeTypeSong,
	NodeTypeRecordLabel,
	NodeTypeAlbum,
	NodeTypeMusicalGroup,
}

// IsWork reports whether a node type is a creative work (Song or Album)
func IsWork(nodeType string) bool {
	return nodeType == NodeTypeSong || nodeType == NodeTypeAlbum
}

// IsKnownNodeType reports whether nodeType is one of the dataset's node types
func IsKnownNodeType(nodeType string) bool {
	for _, t := range NodeTypes {
		if t == nodeType {
			return true
		}
	}
	return false
}

// NodesOfType returns the nodes with the given type, in node order
func (g *Graph) NodesOfType(nodeType string) []Node {
	var result []Node
	for _, n := range g.nodes {
		if n.Type == nodeType {
			result = append(result, n)
		}
	}
	return result
}
