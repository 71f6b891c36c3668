package metrics

// Report is the complete set of aggregates computed in one run.
// Every section is an independent copy; nothing aliases the graph.
type Report struct {
	Overview     Overview     `json:"overview" yaml:"overview"`
	NodeTypes    *Counts      `json:"node_types" yaml:"node_types"`
	EdgeTypes    *Counts      `json:"edge_types" yaml:"edge_types"`
	Categories   []Count      `json:"edge_categories" yaml:"edge_categories"`
	Notability   Notability   `json:"notability" yaml:"notability"`
	Genres       Genres       `json:"genres" yaml:"genres"`
	Temporal     Temporal     `json:"temporal" yaml:"temporal"`
	Connectivity Connectivity `json:"connectivity" yaml:"connectivity"`
	Degree       DegreeStats  `json:"degree" yaml:"degree"`
	Influence    Influence    `json:"influence" yaml:"influence"`
	DataQuality  DataQuality  `json:"data_quality" yaml:"data_quality"`
}

// Overview holds the scalar graph metrics
type Overview struct {
	NodeCount  int     `json:"node_count" yaml:"node_count"`
	EdgeCount  int     `json:"edge_count" yaml:"edge_count"`
	Density    float64 `json:"density" yaml:"density"`
	Directed   bool    `json:"directed" yaml:"directed"`
	Multigraph bool    `json:"multigraph" yaml:"multigraph"`
}

// TypeNotability is the notable/non-notable split of one work type
type TypeNotability struct {
	Type              string  `json:"type" yaml:"type"`
	Notable           int     `json:"notable" yaml:"notable"`
	NonNotable        int     `json:"non_notable" yaml:"non_notable"`
	NotablePercent    float64 `json:"notable_percent" yaml:"notable_percent"`
	NonNotablePercent float64 `json:"non_notable_percent" yaml:"non_notable_percent"`
	Empty             bool    `json:"empty,omitempty" yaml:"empty,omitempty"` // no works of this type; percentages reported as 0
}

// Notability cross-tabulates work types against the notable flag
type Notability struct {
	ByType         []TypeNotability `json:"by_type" yaml:"by_type"`
	TotalWorks     int              `json:"total_works" yaml:"total_works"`
	Notable        int              `json:"notable" yaml:"notable"`
	NonNotable     int              `json:"non_notable" yaml:"non_notable"`
	NotablePercent float64          `json:"notable_percent" yaml:"notable_percent"`
}

// Singles is the single/non-single split among Songs
type Singles struct {
	Songs             int     `json:"songs" yaml:"songs"`
	Singles           int     `json:"singles" yaml:"singles"`
	NonSingles        int     `json:"non_singles" yaml:"non_singles"`
	SinglesPercent    float64 `json:"singles_percent" yaml:"singles_percent"`
	NonSinglesPercent float64 `json:"non_singles_percent" yaml:"non_singles_percent"`
}

// Genres summarizes the genre attribute of works
type Genres struct {
	Counts           *Counts `json:"counts" yaml:"counts"`
	Top              []Count `json:"top" yaml:"top"` // Percent is relative to all works
	Unique           int     `json:"unique" yaml:"unique"`
	NotableUnique    int     `json:"notable_unique" yaml:"notable_unique"`
	NonNotableUnique int     `json:"non_notable_unique" yaml:"non_notable_unique"`
	Singles          Singles `json:"singles" yaml:"singles"`
}

// YearCount is a tally for one release year
type YearCount struct {
	Year  float64 `json:"year" yaml:"year"`
	Count int     `json:"count" yaml:"count"`
}

// DecadeCount is a tally for one decade bucket
type DecadeCount struct {
	Decade int `json:"decade" yaml:"decade"`
	Count  int `json:"count" yaml:"count"`
}

// YearNotability splits one release year by the notable flag
type YearNotability struct {
	Year       float64 `json:"year" yaml:"year"`
	Notable    int     `json:"notable" yaml:"notable"`
	NonNotable int     `json:"non_notable" yaml:"non_notable"`
}

// GenreYear counts releases of the tracked genres in one year.
// Counts is parallel to GenreTimeline.Genres.
type GenreYear struct {
	Year   float64 `json:"year" yaml:"year"`
	Counts []int   `json:"counts" yaml:"counts"`
}

// GenreTimeline tracks the most common genres across release years
type GenreTimeline struct {
	Genres []string    `json:"genres" yaml:"genres"`
	Years  []GenreYear `json:"years" yaml:"years"`
}

// TimeToNotoriety describes notoriety_year - release_year over works with both
type TimeToNotoriety struct {
	Works  int     `json:"works" yaml:"works"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
}

// Temporal aggregates coerced release and notoriety years
type Temporal struct {
	ValidReleases   int              `json:"valid_releases" yaml:"valid_releases"`
	MinYear         float64          `json:"min_year,omitempty" yaml:"min_year,omitempty"`
	MaxYear         float64          `json:"max_year,omitempty" yaml:"max_year,omitempty"`
	ReleasesPerYear []YearCount      `json:"releases_per_year" yaml:"releases_per_year"`
	Decades         []DecadeCount    `json:"decades" yaml:"decades"`
	NotableByYear   []YearNotability `json:"notable_by_year" yaml:"notable_by_year"`
	GenreTimeline   GenreTimeline    `json:"genre_timeline" yaml:"genre_timeline"`
	TimeToNotoriety TimeToNotoriety  `json:"time_to_notoriety" yaml:"time_to_notoriety"`
}

// SizeCount is one bucket of a component size histogram
type SizeCount struct {
	Size       int `json:"size" yaml:"size"`
	Components int `json:"components" yaml:"components"`
}

// ComponentStats summarizes one connectivity partition
type ComponentStats struct {
	Count          int         `json:"count" yaml:"count"`
	Sizes          []int       `json:"sizes" yaml:"sizes"`
	Largest        int         `json:"largest" yaml:"largest"`
	LargestPercent float64     `json:"largest_percent" yaml:"largest_percent"`
	Histogram      []SizeCount `json:"histogram" yaml:"histogram"`
}

// Connectivity holds the weak and strong partitions' statistics
type Connectivity struct {
	Weak   ComponentStats `json:"weak" yaml:"weak"`
	Strong ComponentStats `json:"strong" yaml:"strong"`
}

// RankedNode is a node listed by degree
type RankedNode struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Degree int    `json:"degree" yaml:"degree"`
}

// TypeDegree is the mean total degree within one node type
type TypeDegree struct {
	Type  string  `json:"type" yaml:"type"`
	Nodes int     `json:"nodes" yaml:"nodes"`
	Mean  float64 `json:"mean" yaml:"mean"`
}

// DegreeStats summarizes the per-node degree sequences
type DegreeStats struct {
	In         Summary      `json:"in" yaml:"in"`
	Out        Summary      `json:"out" yaml:"out"`
	Total      Summary      `json:"total" yaml:"total"`
	TopIn      []RankedNode `json:"top_in" yaml:"top_in"`
	TopOut     []RankedNode `json:"top_out" yaml:"top_out"`
	MeanByType []TypeDegree `json:"mean_by_type" yaml:"mean_by_type"`
}

// InfluenceSide counts creative influence for one side of the notable partition
type InfluenceSide struct {
	Works       int     `json:"works" yaml:"works"`
	Received    int     `json:"received" yaml:"received"`
	Given       int     `json:"given" yaml:"given"`
	AvgReceived float64 `json:"avg_received" yaml:"avg_received"`
	AvgGiven    float64 `json:"avg_given" yaml:"avg_given"`
}

// Influence relates creative-influence edges to the notable flag
type Influence struct {
	CreativeEdges          int           `json:"creative_edges" yaml:"creative_edges"`
	SubgraphNodes          int           `json:"subgraph_nodes" yaml:"subgraph_nodes"`
	SubgraphEdges          int           `json:"subgraph_edges" yaml:"subgraph_edges"`
	Notable                InfluenceSide `json:"notable" yaml:"notable"`
	NonNotable             InfluenceSide `json:"non_notable" yaml:"non_notable"`
	ReceivedByNotableTypes *Counts       `json:"received_by_notable_types" yaml:"received_by_notable_types"`
	NotablePredecessors    Summary       `json:"notable_predecessors" yaml:"notable_predecessors"` // distinct creative predecessors per notable work in the subgraph
}

// DataQuality reports values excluded from aggregates
type DataQuality struct {
	ExcludedReleaseYears   int `json:"excluded_release_years" yaml:"excluded_release_years"`
	ExcludedNotorietyYears int `json:"excluded_notoriety_years" yaml:"excluded_notoriety_years"`
}

// Excluded is the total number of excluded values
func (d DataQuality) Excluded() int {
	return d.ExcludedReleaseYears + d.ExcludedNotorietyYears
}
