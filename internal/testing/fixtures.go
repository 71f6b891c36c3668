package testing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Doc is a node-link document under construction
type Doc struct {
	Directed   bool                     `json:"directed"`
	Multigraph bool                     `json:"multigraph"`
	Graph      map[string]interface{}   `json:"graph"`
	Nodes      []map[string]interface{} `json:"nodes"`
	Links      []map[string]interface{} `json:"links"`
}

// NewDoc returns an empty directed multigraph document
func NewDoc() *Doc {
	return &Doc{
		Directed:   true,
		Multigraph: true,
		Graph:      map[string]interface{}{},
		Nodes:      []map[string]interface{}{},
		Links:      []map[string]interface{}{},
	}
}

// Node appends a node. id may be a string or a number, as in the dataset.
func (d *Doc) Node(id interface{}, nodeType string, attrs map[string]interface{}) *Doc {
	n := map[string]interface{}{"id": id}
	if nodeType != "" {
		n["Node Type"] = nodeType
	}
	for k, v := range attrs {
		n[k] = v
	}
	d.Nodes = append(d.Nodes, n)
	return d
}

// Link appends an edge
func (d *Doc) Link(source, target interface{}, edgeType string) *Doc {
	l := map[string]interface{}{"source": source, "target": target}
	if edgeType != "" {
		l["Edge Type"] = edgeType
	}
	d.Links = append(d.Links, l)
	return d
}

// JSON encodes the document
func (d *Doc) JSON(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Failed to encode fixture graph: %v", err)
	}
	return data
}

// Write stores the document in a fresh temp dir and returns its path.
// The directory is removed by t.Cleanup.
func (d *Doc) Write(t *testing.T) string {
	t.Helper()
	return WriteFile(t, "MC1_graph.json", d.JSON(t))
}

// WriteFile writes raw content into a fresh temp dir and returns its path
func WriteFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// ScenarioDoc is the three-node influence scenario: a notable Song A from
// 2000 covered by a non-notable Song B from 2005, plus an unconnected Person C.
func ScenarioDoc() *Doc {
	return NewDoc().
		Node("A", "Song", map[string]interface{}{"name": "A", "notable": true, "release_date": "2000", "genre": "Rock", "single": true}).
		Node("B", "Song", map[string]interface{}{"name": "B", "notable": false, "release_date": "2005", "genre": "Pop"}).
		Node("C", "Person", map[string]interface{}{"name": "C"}).
		Link("A", "B", "CoverOf")
}

// Ptr returns a pointer to v, for optional fields such as WorkRecord.Single
func Ptr[T any](v T) *T {
	return &v
}
