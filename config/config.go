package config

// Config represents the analysis configuration
type Config struct {
	Input    InputConfig    `mapstructure:"input" toml:"input" json:"input" yaml:"input"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Analysis AnalysisConfig `mapstructure:"analysis" toml:"analysis" json:"analysis" yaml:"analysis"`
	Display  DisplayConfig  `mapstructure:"display" toml:"display" json:"display" yaml:"display"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// InputConfig locates the node-link graph document
type InputConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" yaml:"path"` // default: MC1_graph.json
}

// OutputConfig names the derived artifacts. File names are joined onto Dir.
type OutputConfig struct {
	Dir            string `mapstructure:"dir" toml:"dir" json:"dir" yaml:"dir"`
	SongsAlbumsCSV string `mapstructure:"songs_albums_csv" toml:"songs_albums_csv" json:"songs_albums_csv" yaml:"songs_albums_csv"`
	NetworkMetrics string `mapstructure:"network_metrics" toml:"network_metrics" json:"network_metrics" yaml:"network_metrics"`
	EdgeAnalysis   string `mapstructure:"edge_analysis" toml:"edge_analysis" json:"edge_analysis" yaml:"edge_analysis"`
	Summary        string `mapstructure:"summary" toml:"summary" json:"summary" yaml:"summary"` // empty = disabled; .yaml/.yml selects YAML
}

// AnalysisConfig tunes the aggregator
type AnalysisConfig struct {
	MissingNodes   string `mapstructure:"missing_nodes" toml:"missing_nodes" json:"missing_nodes" yaml:"missing_nodes"`         // strict | create
	TopN           int    `mapstructure:"top_n" toml:"top_n" json:"top_n" yaml:"top_n"`                                         // top nodes by degree (default: 10)
	TopGenres      int    `mapstructure:"top_genres" toml:"top_genres" json:"top_genres" yaml:"top_genres"`                     // genres listed (default: 10)
	TimelineGenres int    `mapstructure:"timeline_genres" toml:"timeline_genres" json:"timeline_genres" yaml:"timeline_genres"` // genres tracked per year (default: 5)
}

// DisplayConfig controls console rendering
type DisplayConfig struct {
	Charts bool `mapstructure:"charts" toml:"charts" json:"charts" yaml:"charts"` // render terminal bar charts
}

// LogConfig controls the zap logger
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// Policies for edges that reference undeclared nodes
const (
	MissingNodesStrict = "strict"
	MissingNodesCreate = "create"
)

// Default artifact names
const (
	DefaultInputPath      = "MC1_graph.json"
	DefaultSongsAlbumsCSV = "songs_albums_analysis.csv"
	DefaultNetworkMetrics = "network_metrics.json"
	DefaultEdgeAnalysis   = "edge_analysis.json"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
