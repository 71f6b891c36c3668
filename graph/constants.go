package graph

// Attribute keys used by the node-link document
const (
	attrID       = "id"
	attrSource   = "source"
	attrTarget   = "target"
	attrKey      = "key"
	attrNodeType = "Node Type"
	attrEdgeType = "Edge Type"

	// unknownType labels nodes or edges whose type attribute is absent
	unknownType = "Unknown"
)
