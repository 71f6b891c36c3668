package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options.
// With no config file the tool reads MC1_graph.json and writes into the
// working directory.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input.path", DefaultInputPath)

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.songs_albums_csv", DefaultSongsAlbumsCSV)
	v.SetDefault("output.network_metrics", DefaultNetworkMetrics)
	v.SetDefault("output.edge_analysis", DefaultEdgeAnalysis)
	v.SetDefault("output.summary", "")

	v.SetDefault("analysis.missing_nodes", MissingNodesStrict)
	v.SetDefault("analysis.top_n", 10)
	v.SetDefault("analysis.top_genres", 10)
	v.SetDefault("analysis.timeline_genres", 5)

	v.SetDefault("display.charts", false)
	v.SetDefault("log.json", false)
}

// BindEnvVars explicitly binds the settings most often overridden in scripts.
// A name must not equal a section's automatic env name: MC1EDA_INPUT would be
// read as the whole [input] table and shadow input.path.
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("input.path", "MC1EDA_INPUT_PATH")
	_ = v.BindEnv("output.dir", "MC1EDA_OUT")
	_ = v.BindEnv("analysis.missing_nodes", "MC1EDA_MISSING_NODES")
}

// SongsAlbumsCSVPath returns the CSV destination joined onto the output dir
func (c *Config) SongsAlbumsCSVPath() string {
	return c.outputPath(c.Output.SongsAlbumsCSV, DefaultSongsAlbumsCSV)
}

// NetworkMetricsPath returns the metrics destination joined onto the output dir
func (c *Config) NetworkMetricsPath() string {
	return c.outputPath(c.Output.NetworkMetrics, DefaultNetworkMetrics)
}

// EdgeAnalysisPath returns the edge analysis destination joined onto the output dir
func (c *Config) EdgeAnalysisPath() string {
	return c.outputPath(c.Output.EdgeAnalysis, DefaultEdgeAnalysis)
}

// SummaryPath returns the summary destination, or "" when disabled
func (c *Config) SummaryPath() string {
	if c.Output.Summary == "" {
		return ""
	}
	return c.outputPath(c.Output.Summary, "")
}

func (c *Config) outputPath(name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	dir := c.Output.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

// GetInputPath returns the input path (default: MC1_graph.json)
func (c *Config) GetInputPath() string {
	if c.Input.Path == "" {
		return DefaultInputPath
	}
	return c.Input.Path
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Input: %s, Output: %s, MissingNodes: %s, TopN: %d}",
		c.GetInputPath(), c.Output.Dir, c.Analysis.MissingNodes, c.Analysis.TopN)
}
