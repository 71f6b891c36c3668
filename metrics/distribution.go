package metrics

import (
	"github.com/camilacod/DataVizVastProject/extract"
	"github.com/camilacod/DataVizVastProject/graph"
	"github.com/camilacod/DataVizVastProject/internal/util"
)

// NodeTypeCounts tallies nodes per Node Type in node order
func NodeTypeCounts(g *graph.Graph) *Counts {
	counts := NewCounts()
	for _, n := range g.Nodes() {
		counts.Add(n.Type)
	}
	return counts
}

// EdgeTypeCounts tallies edges per Edge Type in edge order
func EdgeTypeCounts(edges []extract.EdgeRecord) *Counts {
	counts := NewCounts()
	for _, e := range edges {
		counts.Add(e.EdgeType)
	}
	return counts
}

// CategoryCounts folds edge type tallies into the fixed functional categories.
// Uncategorized edges are listed last, only when present.
func CategoryCounts(edgeTypes *Counts) []Count {
	sums := NewCounts()
	for _, cat := range graph.Categories {
		sums.AddN(string(cat), 0)
		for _, edgeType := range graph.EdgeTypesIn(cat) {
			sums.AddN(string(cat), edgeTypes.Get(edgeType))
		}
	}
	for _, edgeType := range edgeTypes.Keys() {
		if graph.CategoryOf(edgeType) == graph.CategoryUncategorized {
			sums.AddN(string(graph.CategoryUncategorized), edgeTypes.Get(edgeType))
		}
	}
	return sums.Ordered()
}

// NotabilityOf cross-tabulates Song and Album against the notable flag.
// A type without works is flagged Empty and reports 0%.
func NotabilityOf(works []extract.WorkRecord) Notability {
	var n Notability
	for _, workType := range []string{graph.NodeTypeSong, graph.NodeTypeAlbum} {
		row := TypeNotability{Type: workType}
		for _, w := range works {
			if w.Type != workType {
				continue
			}
			if w.Notable {
				row.Notable++
			} else {
				row.NonNotable++
			}
		}
		members := row.Notable + row.NonNotable
		row.Empty = members == 0
		row.NotablePercent = util.Percent(row.Notable, members)
		row.NonNotablePercent = util.Percent(row.NonNotable, members)
		n.ByType = append(n.ByType, row)
	}

	n.TotalWorks = len(works)
	for _, w := range works {
		if w.Notable {
			n.Notable++
		}
	}
	n.NonNotable = n.TotalWorks - n.Notable
	n.NotablePercent = util.Percent(n.Notable, n.TotalWorks)
	return n
}

// GenresOf tallies genres of works (missing genres excluded) and the
// singles share among Songs
func GenresOf(works []extract.WorkRecord, topGenres int) Genres {
	counts := NewCounts()
	notable := make(map[string]bool)
	nonNotable := make(map[string]bool)
	for _, w := range works {
		if w.Genre == "" {
			continue
		}
		counts.Add(w.Genre)
		if w.Notable {
			notable[w.Genre] = true
		} else {
			nonNotable[w.Genre] = true
		}
	}

	top := counts.Top(topGenres)
	for i := range top {
		top[i].Percent = util.Percent(top[i].Count, len(works))
	}

	return Genres{
		Counts:           counts,
		Top:              top,
		Unique:           counts.Len(),
		NotableUnique:    len(notable),
		NonNotableUnique: len(nonNotable),
		Singles:          singlesOf(works),
	}
}

func singlesOf(works []extract.WorkRecord) Singles {
	var s Singles
	for _, w := range works {
		if w.Type != graph.NodeTypeSong || w.Single == nil {
			continue
		}
		s.Songs++
		if *w.Single {
			s.Singles++
		} else {
			s.NonSingles++
		}
	}
	s.SinglesPercent = util.Percent(s.Singles, s.Songs)
	s.NonSinglesPercent = util.Percent(s.NonSingles, s.Songs)
	return s
}
