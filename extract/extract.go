package extract

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/camilacod/DataVizVastProject/graph"
)

// Song/Album attribute keys
const (
	attrGenre         = "genre"
	attrNotable       = "notable"
	attrReleaseDate   = "release_date"
	attrNotorietyDate = "notoriety_date"
	attrWrittenDate   = "written_date"
	attrSingle        = "single"
)

// Extract walks the graph once and flattens it into the Songs/Albums table
// and the edge table. Only Song and Album nodes produce work rows.
func Extract(g *graph.Graph) Tables {
	var tables Tables

	for _, n := range g.Nodes() {
		if !graph.IsWork(n.Type) {
			continue
		}
		tables.Works = append(tables.Works, workRecord(n))
	}

	tables.Edges = make([]EdgeRecord, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		tables.Edges = append(tables.Edges, EdgeRecord{
			Source:   e.Source,
			Target:   e.Target,
			EdgeType: e.Type,
		})
	}

	return tables
}

func workRecord(n graph.Node) WorkRecord {
	notable, _ := n.Bool(attrNotable)
	w := WorkRecord{
		ID:            n.ID,
		Type:          n.Type,
		Genre:         rawText(n.Attrs[attrGenre]),
		Notable:       notable,
		ReleaseDate:   rawText(n.Attrs[attrReleaseDate]),
		NotorietyDate: rawText(n.Attrs[attrNotorietyDate]),
		WrittenDate:   rawText(n.Attrs[attrWrittenDate]),
		Name:          n.Name(),
	}
	if n.Type == graph.NodeTypeSong {
		single, _ := n.Bool(attrSingle)
		w.Single = &single
	}
	return w
}

// rawText renders an attribute value as text, "" when absent
func rawText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return graph.FormatNumber(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// FormatBool renders booleans the way the CSV consumers expect (True/False)
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
