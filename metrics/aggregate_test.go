package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilacod/DataVizVastProject/extract"
	"github.com/camilacod/DataVizVastProject/graph"
	edatest "github.com/camilacod/DataVizVastProject/internal/testing"
)

func aggregateDoc(t *testing.T, doc *edatest.Doc) (*graph.Graph, extract.Tables, *Report) {
	t.Helper()
	g, err := graph.Decode(strings.NewReader(string(doc.JSON(t))), graph.LoadOptions{})
	require.NoError(t, err)
	tables := extract.Extract(g)
	return g, tables, Aggregate(g, tables, DefaultOptions())
}

func TestAggregate_Scenario(t *testing.T) {
	_, tables, r := aggregateDoc(t, edatest.ScenarioDoc())

	assert.Len(t, tables.Works, 2)
	assert.Equal(t, 1, r.Notability.Notable)
	assert.Equal(t, 1, r.Notability.NonNotable)
	assert.Equal(t, 1, r.Influence.CreativeEdges)
	assert.Equal(t, 0, r.Influence.Notable.Received)
	assert.Equal(t, 1, r.Influence.NonNotable.Received)
	assert.Equal(t, 1, r.Influence.Notable.Given)
	assert.Equal(t, 0, r.Influence.NonNotable.Given)
	assert.Equal(t, 1.0, r.Influence.Notable.AvgGiven)
	assert.Equal(t, 2, r.Influence.SubgraphNodes)
	assert.Equal(t, 1, r.Influence.SubgraphEdges)
	assert.Equal(t, 0, r.Influence.ReceivedByNotableTypes.Total())

	assert.Equal(t, Overview{NodeCount: 3, EdgeCount: 1, Density: 1.0 / 6, Directed: true, Multigraph: true}, r.Overview)
	assert.Equal(t, 2, r.Connectivity.Weak.Count)
	assert.Equal(t, 2, r.Connectivity.Weak.Largest)
	assert.Equal(t, 3, r.Connectivity.Strong.Count)
	assert.Equal(t, 1, r.Connectivity.Strong.Largest)

	assert.Equal(t, 2, r.Temporal.ValidReleases)
	assert.Equal(t, 2000.0, r.Temporal.MinYear)
	assert.Equal(t, 2005.0, r.Temporal.MaxYear)
	assert.Equal(t, []DecadeCount{{Decade: 2000, Count: 2}}, r.Temporal.Decades)
	assert.Equal(t, 0, r.Temporal.TimeToNotoriety.Works)
}

func TestAggregate_TypeCountsSumToTotals(t *testing.T) {
	doc := edatest.NewDoc().
		Node("p1", "Person", nil).
		Node("p2", "Person", nil).
		Node("g", "MusicalGroup", nil).
		Node("s", "Song", nil).
		Node("a", "Album", nil).
		Node("l", "RecordLabel", nil).
		Node("x", "", nil).
		Link("p1", "g", "MemberOf").
		Link("p2", "g", "MemberOf").
		Link("p1", "s", "PerformerOf").
		Link("p1", "s", "ComposerOf").
		Link("s", "l", "RecordedBy").
		Link("a", "s", "InStyleOf").
		Link("x", "a", "")
	g, _, r := aggregateDoc(t, doc)

	assert.Equal(t, g.NodeCount(), r.NodeTypes.Total())
	assert.Equal(t, g.EdgeCount(), r.EdgeTypes.Total())
	assert.Equal(t, 1, r.NodeTypes.Get("Unknown"))
	assert.Equal(t, []string{"MemberOf", "PerformerOf", "ComposerOf", "RecordedBy", "InStyleOf", "Unknown"}, r.EdgeTypes.Keys())

	byCategory := make(map[string]int)
	sum := 0
	for _, c := range r.Categories {
		byCategory[c.Key] = c.Count
		sum += c.Count
	}
	assert.Equal(t, g.EdgeCount(), sum)
	assert.Equal(t, 1, byCategory[string(graph.CategoryCreativeInfluence)])
	assert.Equal(t, 2, byCategory[string(graph.CategoryProfessionalRole)])
	assert.Equal(t, 1, byCategory[string(graph.CategoryBusinessRelationship)])
	assert.Equal(t, 2, byCategory[string(graph.CategoryMembership)])
	assert.Equal(t, 1, byCategory[string(graph.CategoryUncategorized)])
}

func TestNotabilityOf_EmptyGuard(t *testing.T) {
	works := []extract.WorkRecord{
		{ID: "1", Type: graph.NodeTypeSong, Notable: true},
		{ID: "2", Type: graph.NodeTypeSong},
		{ID: "3", Type: graph.NodeTypeSong},
		{ID: "4", Type: graph.NodeTypeSong},
	}
	n := NotabilityOf(works)

	require.Len(t, n.ByType, 2)
	song, album := n.ByType[0], n.ByType[1]
	assert.Equal(t, 25.0, song.NotablePercent)
	assert.Equal(t, 75.0, song.NonNotablePercent)
	assert.False(t, song.Empty)
	assert.True(t, album.Empty)
	assert.Equal(t, 0.0, album.NotablePercent)
	assert.Equal(t, 25.0, n.NotablePercent)

	none := NotabilityOf(nil)
	assert.Equal(t, 0, none.TotalWorks)
	assert.Equal(t, 0.0, none.NotablePercent)
	assert.True(t, none.ByType[0].Empty)
}

func TestTemporalOf_Exclusion(t *testing.T) {
	works := []extract.WorkRecord{
		{ID: "1", Genre: "Rock", ReleaseDate: "2000", NotorietyDate: "2004", Notable: true},
		{ID: "2", Genre: "Rock", ReleaseDate: "2003", NotorietyDate: "2005"},
		{ID: "3", Genre: "Pop", ReleaseDate: "19x5", NotorietyDate: "2001"},
		{ID: "4", Genre: "Pop", ReleaseDate: "2011"},
		{ID: "5", NotorietyDate: "soon"},
		{ID: "6", Genre: "Jazz", ReleaseDate: "1999", NotorietyDate: "2009"},
	}
	genres := GenresOf(works, 10)
	temporal, quality := TemporalOf(works, genres.Counts, 2)

	assert.Equal(t, 4, temporal.ValidReleases)
	assert.Equal(t, 1999.0, temporal.MinYear)
	assert.Equal(t, 2011.0, temporal.MaxYear)
	assert.Equal(t, DataQuality{ExcludedReleaseYears: 1, ExcludedNotorietyYears: 1}, quality)
	assert.Equal(t, 2, quality.Excluded())

	// Only works 1, 2 and 6 have both years
	assert.Equal(t, TimeToNotoriety{Works: 3, Mean: 16.0 / 3, Median: 4}, temporal.TimeToNotoriety)

	assert.Equal(t, []DecadeCount{{1990, 1}, {2000, 2}, {2010, 1}}, temporal.Decades)
	assert.Equal(t, []YearCount{{1999, 1}, {2000, 1}, {2003, 1}, {2011, 1}}, temporal.ReleasesPerYear)
	assert.Equal(t, []YearNotability{{1999, 0, 1}, {2000, 1, 0}, {2003, 0, 1}, {2011, 0, 1}}, temporal.NotableByYear)

	assert.Equal(t, []string{"Rock", "Pop"}, temporal.GenreTimeline.Genres)
	assert.Equal(t, []GenreYear{
		{Year: 2000, Counts: []int{1, 0}},
		{Year: 2003, Counts: []int{1, 0}},
		{Year: 2011, Counts: []int{0, 1}},
	}, temporal.GenreTimeline.Years)
}

func TestGenresOf(t *testing.T) {
	single, notSingle := true, false
	works := []extract.WorkRecord{
		{ID: "1", Type: graph.NodeTypeSong, Genre: "Rock", Notable: true, Single: &single},
		{ID: "2", Type: graph.NodeTypeSong, Genre: "Pop", Single: &notSingle},
		{ID: "3", Type: graph.NodeTypeSong, Genre: "Rock", Single: &notSingle},
		{ID: "4", Type: graph.NodeTypeAlbum, Genre: "Folk", Notable: true},
		{ID: "5", Type: graph.NodeTypeAlbum},
	}
	g := GenresOf(works, 2)

	assert.Equal(t, 4, g.Counts.Total(), "missing genre excluded")
	assert.Equal(t, 3, g.Unique)
	assert.Equal(t, 2, g.NotableUnique)
	assert.Equal(t, 2, g.NonNotableUnique)
	require.Len(t, g.Top, 2)
	assert.Equal(t, "Rock", g.Top[0].Key)
	assert.InDelta(t, 40.0, g.Top[0].Percent, 1e-9, "relative to all works")
	assert.Equal(t, 3, g.Singles.Songs)
	assert.Equal(t, 1, g.Singles.Singles)
	assert.Equal(t, 2, g.Singles.NonSingles)
	assert.InDelta(t, 100.0/3, g.Singles.SinglesPercent, 1e-9)
	assert.InDelta(t, 200.0/3, g.Singles.NonSinglesPercent, 1e-9)
}

func TestDegreeOf(t *testing.T) {
	doc := edatest.NewDoc().
		Node("a", "Person", map[string]interface{}{"name": "Ann"}).
		Node("b", "Song", map[string]interface{}{"name": "Tune"}).
		Node("c", "Song", nil).
		Node("d", "Person", map[string]interface{}{"stage_name": "Dee"}).
		Link("a", "b", "PerformerOf").
		Link("a", "b", "ComposerOf").
		Link("a", "c", "PerformerOf").
		Link("d", "c", "ProducerOf")
	_, _, r := aggregateDoc(t, doc)
	deg := r.Degree

	assert.Equal(t, Summary{Mean: 1, Median: 1, Max: 2}, deg.In)
	assert.Equal(t, Summary{Mean: 1, Median: 0.5, Max: 3}, deg.Out)
	assert.Equal(t, Summary{Mean: 2, Median: 2, Max: 3}, deg.Total)

	require.Len(t, deg.TopIn, 4)
	assert.Equal(t, []string{"b", "c", "a", "d"}, rankedIDs(deg.TopIn), "ties keep node order")
	assert.Equal(t, "Tune", deg.TopIn[0].Name)
	assert.Equal(t, "Unknown", deg.TopIn[1].Name)
	assert.Equal(t, []string{"a", "d", "b", "c"}, rankedIDs(deg.TopOut))
	assert.Equal(t, "Dee", deg.TopOut[1].Name)

	assert.Equal(t, []TypeDegree{
		{Type: "Person", Nodes: 2, Mean: 2},
		{Type: "Song", Nodes: 2, Mean: 2},
	}, deg.MeanByType)

	top2 := DegreeOf(mustDecode(t, doc), 2)
	assert.Len(t, top2.TopIn, 2)
}

func TestInfluenceOf(t *testing.T) {
	doc := edatest.NewDoc().
		Node("n1", "Song", map[string]interface{}{"notable": true}).
		Node("n2", "Album", map[string]interface{}{"notable": true}).
		Node("o1", "Song", nil).
		Node("p", "Person", nil).
		Link("o1", "n1", "InStyleOf").
		Link("o1", "n1", "CoverOf").
		Link("n2", "n1", "DirectlySamples").
		Link("p", "n2", "InStyleOf").
		Link("n1", "o1", "LyricalReferenceTo").
		Link("p", "o1", "PerformerOf")
	_, _, r := aggregateDoc(t, doc)
	inf := r.Influence

	assert.Equal(t, 5, inf.CreativeEdges)
	assert.Equal(t, InfluenceSide{Works: 2, Received: 4, Given: 2, AvgReceived: 2, AvgGiven: 1}, inf.Notable)
	assert.Equal(t, InfluenceSide{Works: 1, Received: 1, Given: 2, AvgReceived: 1, AvgGiven: 2}, inf.NonNotable)
	assert.Equal(t, []string{"InStyleOf", "CoverOf", "DirectlySamples"}, inf.ReceivedByNotableTypes.Keys())
	assert.Equal(t, 2, inf.ReceivedByNotableTypes.Get("InStyleOf"))

	assert.Equal(t, 4, inf.SubgraphNodes)
	assert.Equal(t, 4, inf.SubgraphEdges, "parallel o1->n1 collapsed")
	// n1 has predecessors {o1, n2}, n2 has {p}
	assert.Equal(t, Summary{Mean: 1.5, Median: 1.5, Max: 2}, inf.NotablePredecessors)
}

func TestInfluenceOf_EmptySets(t *testing.T) {
	doc := edatest.NewDoc().Node("p", "Person", nil).Node("q", "Person", nil).Link("p", "q", "InStyleOf")
	_, _, r := aggregateDoc(t, doc)

	assert.Equal(t, 1, r.Influence.CreativeEdges)
	assert.Equal(t, InfluenceSide{}, r.Influence.Notable)
	assert.Equal(t, InfluenceSide{}, r.Influence.NonNotable)
}

func TestConnectivityHistogram(t *testing.T) {
	assert.Equal(t, []SizeCount{{1, 2}, {3, 1}}, sizeHistogram([]int{1, 3, 1}))
	assert.Empty(t, sizeHistogram(nil))
}

func rankedIDs(nodes []RankedNode) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

func mustDecode(t *testing.T, doc *edatest.Doc) *graph.Graph {
	t.Helper()
	g, err := graph.Decode(strings.NewReader(string(doc.JSON(t))), graph.LoadOptions{})
	require.NoError(t, err)
	return g
}
