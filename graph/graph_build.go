package graph

import (
	"go.uber.org/zap"

	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
	"github.com/camilacod/DataVizVastProject/logger"
)

// builder accumulates nodes and edges before the adjacency index is frozen
type builder struct {
	g      *Graph
	policy MissingNodePolicy
	log    *zap.SugaredLogger

	duplicates int
	created    []string
}

func newBuilder(policy MissingNodePolicy, log *zap.SugaredLogger) *builder {
	if policy == "" {
		policy = MissingNodesStrict
	}
	return &builder{
		g:      &Graph{index: make(map[string]int)},
		policy: policy,
		log:    log,
	}
}

// addNode appends a node, or merges attributes into an existing one.
// A repeated id keeps its first position; later attribute values win.
func (b *builder) addNode(id string, attrs map[string]interface{}) {
	if pos, exists := b.g.index[id]; exists {
		b.duplicates++
		existing := &b.g.nodes[pos]
		for k, v := range attrs {
			existing.Attrs[k] = v
		}
		existing.Type = typeAttr(existing.Attrs, attrNodeType)
		return
	}

	b.g.index[id] = len(b.g.nodes)
	b.g.nodes = append(b.g.nodes, Node{
		ID:    id,
		Type:  typeAttr(attrs, attrNodeType),
		Attrs: attrs,
	})
}

// ensureNode resolves an edge endpoint according to the missing-node policy
func (b *builder) ensureNode(id string, edgeIndex int, end string) error {
	if _, ok := b.g.index[id]; ok {
		return nil
	}
	if b.policy == MissingNodesCreate {
		b.created = append(b.created, id)
		b.addNode(id, make(map[string]interface{}))
		return nil
	}
	return grapherr.Newf(grapherr.CategoryIntegrity,
		"An edge references a node that is not declared",
		"edge %d: %s %q is not a declared node", edgeIndex, end, id).
		WithStage(grapherr.StageLoad).
		WithContext("edge_index", edgeIndex).
		WithContext("node_id", id)
}

func (b *builder) addEdge(e Edge) {
	b.g.edges = append(b.g.edges, e)
}

// freeze builds the adjacency lists; the graph is read-only afterwards
func (b *builder) freeze() *Graph {
	g := b.g
	g.out = make([][]int, len(g.nodes))
	g.in = make([][]int, len(g.nodes))
	for i, e := range g.edges {
		s, t := g.index[e.Source], g.index[e.Target]
		g.out[s] = append(g.out[s], i)
		g.in[t] = append(g.in[t], i)
	}
	return g
}

// finish freezes the graph and reports what the loader repaired
func (b *builder) finish() *Graph {
	if b.duplicates > 0 {
		b.log.Warnw("Merged duplicate node declarations", logger.FieldCount, b.duplicates)
	}
	if len(b.created) > 0 {
		b.log.Warnw("Created nodes referenced only by edges",
			logger.FieldCount, len(b.created),
			"first", b.created[0])
	}
	return b.freeze()
}

// buildFromDocument walks a schema-validated node-link document.
// Node and edge order follow the document.
func buildFromDocument(doc map[string]interface{}, opts LoadOptions) (*Graph, error) {
	log := opts.logger()
	b := newBuilder(opts.MissingNodes, log)

	b.g.Directed, _ = doc["directed"].(bool)
	b.g.Multigraph, _ = doc["multigraph"].(bool)
	if !b.g.Directed {
		log.Debugw("Document does not declare a directed graph; edges are read as directed anyway")
	}

	nodes, _ := doc["nodes"].([]interface{})
	for i, raw := range nodes {
		obj := raw.(map[string]interface{})
		id, err := normalizeNodeID(obj[attrID])
		if err != nil {
			return nil, grapherr.New(grapherr.CategoryParse, err, "A node has an unusable identifier").
				WithSubcategory(grapherr.SubcategoryParseSchema).
				WithStage(grapherr.StageLoad).
				WithContext("node_index", i)
		}
		attrs := make(map[string]interface{}, len(obj))
		for k, v := range obj {
			if k != attrID {
				attrs[k] = v
			}
		}
		b.addNode(id, attrs)
	}

	edgeList, ok := doc["links"].([]interface{})
	if !ok {
		edgeList, _ = doc["edges"].([]interface{})
	}
	for i, raw := range edgeList {
		obj := raw.(map[string]interface{})
		source, target, err := edgeEndpoints(obj)
		if err != nil {
			return nil, grapherr.New(grapherr.CategoryParse, err, "An edge has an unusable endpoint").
				WithSubcategory(grapherr.SubcategoryParseSchema).
				WithStage(grapherr.StageLoad).
				WithContext("edge_index", i)
		}
		if err := b.ensureNode(source, i, attrSource); err != nil {
			return nil, err
		}
		if err := b.ensureNode(target, i, attrTarget); err != nil {
			return nil, err
		}

		attrs := make(map[string]interface{}, len(obj))
		for k, v := range obj {
			if k != attrSource && k != attrTarget && k != attrKey {
				attrs[k] = v
			}
		}
		b.addEdge(Edge{
			Source: source,
			Target: target,
			Type:   typeAttr(attrs, attrEdgeType),
			Attrs:  attrs,
		})
	}

	return b.finish(), nil
}

func edgeEndpoints(obj map[string]interface{}) (string, string, error) {
	source, err := normalizeNodeID(obj[attrSource])
	if err != nil {
		return "", "", err
	}
	target, err := normalizeNodeID(obj[attrTarget])
	if err != nil {
		return "", "", err
	}
	return source, target, nil
}
