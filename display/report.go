package display

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/camilacod/DataVizVastProject/metrics"
)

// Options controls console rendering
type Options struct {
	Charts bool // horizontal bar charts next to the distribution tables
	TopN   int  // rows shown in ranked tables; 0 shows all
}

// Renderer writes a human-readable report to w
type Renderer struct {
	w    io.Writer
	opts Options
}

// NewRenderer returns a renderer writing to w
func NewRenderer(w io.Writer, opts Options) *Renderer {
	return &Renderer{w: w, opts: opts}
}

// Report renders every section of r in pipeline order
func (r *Renderer) Report(rep *metrics.Report) {
	r.overview(rep)
	r.distributions(rep)
	r.notability(rep.Notability)
	r.genres(rep.Genres)
	r.temporal(rep.Temporal, rep.DataQuality)
	r.connectivity(rep.Connectivity)
	r.degree(rep.Degree)
	r.influence(rep.Influence)
}

// Written lists the files a run produced
func (r *Renderer) Written(paths []string) {
	if len(paths) == 0 {
		return
	}
	r.section("Output files")
	for _, p := range paths {
		pterm.Fprintln(r.w, "  "+p)
	}
}

func (r *Renderer) overview(rep *metrics.Report) {
	o := rep.Overview
	r.section("Graph overview")
	r.table([][]string{
		{"Metric", "Value"},
		{"Nodes", comma(o.NodeCount)},
		{"Edges", comma(o.EdgeCount)},
		{"Density", fmt.Sprintf("%.6f", o.Density)},
		{"Directed", fmt.Sprint(o.Directed)},
		{"Multigraph", fmt.Sprint(o.Multigraph)},
	})
}

func (r *Renderer) distributions(rep *metrics.Report) {
	r.section("Node types")
	r.counts("Node Type", rep.NodeTypes.MostCommon())

	r.section("Edge types")
	r.counts("Edge Type", rep.EdgeTypes.MostCommon())

	r.section("Edge categories")
	r.counts("Category", rep.Categories)
}

func (r *Renderer) notability(n metrics.Notability) {
	r.section("Notability")
	rows := [][]string{{"Type", "Notable", "Non-notable", "Notable %"}}
	for _, t := range n.ByType {
		pct := percent(t.NotablePercent)
		if t.Empty {
			pct = "n/a"
		}
		rows = append(rows, []string{t.Type, comma(t.Notable), comma(t.NonNotable), pct})
	}
	rows = append(rows, []string{"All works", comma(n.Notable), comma(n.NonNotable), percent(n.NotablePercent)})
	r.table(rows)
}

func (r *Renderer) genres(g metrics.Genres) {
	r.section("Genres")
	pterm.Fprintln(r.w, fmt.Sprintf("Unique genres: %s (notable works: %s, non-notable works: %s)",
		comma(g.Unique), comma(g.NotableUnique), comma(g.NonNotableUnique)))
	r.counts("Genre", g.Top)

	s := g.Singles
	pterm.Fprintln(r.w, fmt.Sprintf("Singles: %s of %s songs (%s)",
		comma(s.Singles), comma(s.Songs), percent(s.SinglesPercent)))
}

func (r *Renderer) temporal(t metrics.Temporal, q metrics.DataQuality) {
	r.section("Release years")
	if t.ValidReleases == 0 {
		pterm.Fprintln(r.w, "No works with a numeric release date")
	} else {
		pterm.Fprintln(r.w, fmt.Sprintf("Works with a release year: %s (%.0f - %.0f)",
			comma(t.ValidReleases), t.MinYear, t.MaxYear))

		rows := [][]string{{"Decade", "Releases"}}
		bars := make(pterm.Bars, 0, len(t.Decades))
		for _, d := range t.Decades {
			label := fmt.Sprintf("%ds", d.Decade)
			rows = append(rows, []string{label, comma(d.Count)})
			bars = append(bars, pterm.Bar{Label: label, Value: d.Count})
		}
		r.table(rows)
		r.chart(bars)
	}

	ttn := t.TimeToNotoriety
	if ttn.Works > 0 {
		pterm.Fprintln(r.w, fmt.Sprintf("Years from release to notoriety over %s works: mean %s, median %s",
			comma(ttn.Works), decimal(ttn.Mean), decimal(ttn.Median)))
	}
	if q.Excluded() > 0 {
		pterm.Fprintln(r.w, fmt.Sprintf("Excluded non-numeric values: %s release dates, %s notoriety dates",
			comma(q.ExcludedReleaseYears), comma(q.ExcludedNotorietyYears)))
	}
}

func (r *Renderer) connectivity(c metrics.Connectivity) {
	r.section("Connectivity")
	r.table([][]string{
		{"Partition", "Components", "Largest", "Largest %"},
		{"Weak", comma(c.Weak.Count), comma(c.Weak.Largest), percent(c.Weak.LargestPercent)},
		{"Strong", comma(c.Strong.Count), comma(c.Strong.Largest), percent(c.Strong.LargestPercent)},
	})
}

func (r *Renderer) degree(d metrics.DegreeStats) {
	r.section("Degree")
	r.table([][]string{
		{"Degree", "Mean", "Median", "Max"},
		summaryRow("In", d.In),
		summaryRow("Out", d.Out),
		summaryRow("Total", d.Total),
	})

	r.ranked("Top nodes by in-degree", d.TopIn)
	r.ranked("Top nodes by out-degree", d.TopOut)

	rows := [][]string{{"Node Type", "Nodes", "Mean degree"}}
	for _, t := range d.MeanByType {
		rows = append(rows, []string{t.Type, comma(t.Nodes), decimal(t.Mean)})
	}
	r.table(rows)
}

func (r *Renderer) influence(in metrics.Influence) {
	r.section("Creative influence and notability")
	pterm.Fprintln(r.w, fmt.Sprintf("Creative influence edges: %s (subgraph: %s nodes, %s edges)",
		comma(in.CreativeEdges), comma(in.SubgraphNodes), comma(in.SubgraphEdges)))
	r.table([][]string{
		{"Works", "Count", "Received", "Given", "Avg received", "Avg given"},
		influenceRow("Notable", in.Notable),
		influenceRow("Non-notable", in.NonNotable),
	})
	if in.ReceivedByNotableTypes.Len() > 0 {
		r.counts("Influence received by notable works", in.ReceivedByNotableTypes.MostCommon())
	}
	p := in.NotablePredecessors
	pterm.Fprintln(r.w, fmt.Sprintf("Distinct creative predecessors per notable work: mean %s, median %s, max %s",
		decimal(p.Mean), decimal(p.Median), decimal(p.Max)))
}

func (r *Renderer) ranked(title string, nodes []metrics.RankedNode) {
	if len(nodes) == 0 {
		return
	}
	pterm.Fprintln(r.w, title)
	rows := [][]string{{"Name", "Type", "Degree"}}
	for i := 0; i < r.limitLen(len(nodes)); i++ {
		rows = append(rows, []string{nodes[i].Name, nodes[i].Type, comma(nodes[i].Degree)})
	}
	r.table(rows)
}

func (r *Renderer) counts(label string, entries []metrics.Count) {
	rows := [][]string{{label, "Count", "Percent"}}
	bars := make(pterm.Bars, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Key, comma(e.Count), percent(e.Percent)})
		bars = append(bars, pterm.Bar{Label: e.Key, Value: e.Count})
	}
	r.table(rows)
	r.chart(bars)
}

func (r *Renderer) section(title string) {
	pterm.DefaultSection.WithWriter(r.w).Println(title)
}

func (r *Renderer) table(rows [][]string) {
	if len(rows) < 2 {
		return
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).WithWriter(r.w).Render()
}

func (r *Renderer) chart(bars pterm.Bars) {
	if !r.opts.Charts || len(bars) == 0 {
		return
	}
	_ = pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).WithWriter(r.w).Render()
}

func (r *Renderer) limitLen(n int) int {
	if r.opts.TopN > 0 && r.opts.TopN < n {
		return r.opts.TopN
	}
	return n
}

func summaryRow(label string, s metrics.Summary) []string {
	return []string{label, decimal(s.Mean), decimal(s.Median), decimal(s.Max)}
}

func influenceRow(label string, s metrics.InfluenceSide) []string {
	return []string{label, comma(s.Works), comma(s.Received), comma(s.Given), decimal(s.AvgReceived), decimal(s.AvgGiven)}
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

// decimal rounds to two places; CommafWithDigits alone truncates
func decimal(f float64) string {
	return humanize.CommafWithDigits(math.Round(f*100)/100, 2)
}

func percent(f float64) string {
	return fmt.Sprintf("%.2f%%", f)
}
