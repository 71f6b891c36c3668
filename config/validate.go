package config

import "github.com/camilacod/DataVizVastProject/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Input path is optional - empty defaults to MC1_graph.json

	switch c.Analysis.MissingNodes {
	case MissingNodesStrict, MissingNodesCreate:
	case "":
		return errors.NewInvalidConfigError("analysis.missing_nodes cannot be empty (use %q or %q)",
			MissingNodesStrict, MissingNodesCreate)
	default:
		return errors.NewInvalidConfigError("analysis.missing_nodes must be %q or %q, got %q",
			MissingNodesStrict, MissingNodesCreate, c.Analysis.MissingNodes)
	}

	// Listing sizes: 0 would hide the section entirely, negative is meaningless
	if c.Analysis.TopN <= 0 {
		return errors.NewInvalidConfigError("analysis.top_n must be > 0, got %d", c.Analysis.TopN)
	}
	if c.Analysis.TopGenres <= 0 {
		return errors.NewInvalidConfigError("analysis.top_genres must be > 0, got %d", c.Analysis.TopGenres)
	}
	if c.Analysis.TimelineGenres < 0 {
		return errors.NewInvalidConfigError("analysis.timeline_genres must be >= 0, got %d", c.Analysis.TimelineGenres)
	}

	// Artifact names must not collide, otherwise one overwrites another
	seen := make(map[string]string)
	for _, out := range []struct{ key, path string }{
		{"output.songs_albums_csv", c.SongsAlbumsCSVPath()},
		{"output.network_metrics", c.NetworkMetricsPath()},
		{"output.edge_analysis", c.EdgeAnalysisPath()},
		{"output.summary", c.SummaryPath()},
	} {
		if out.path == "" {
			continue
		}
		if other, ok := seen[out.path]; ok {
			return errors.NewInvalidConfigError("%s and %s both write %s", other, out.key, out.path)
		}
		seen[out.path] = out.key
	}

	return nil
}
