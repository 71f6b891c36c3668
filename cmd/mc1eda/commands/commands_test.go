package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilacod/DataVizVastProject/config"
	"github.com/camilacod/DataVizVastProject/errors"
	edatest "github.com/camilacod/DataVizVastProject/internal/testing"
	"github.com/camilacod/DataVizVastProject/report"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// execute runs args against a root carrying the persistent --json flag.
// Package-level commands keep flag state between runs, so it is reset first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	root := &cobra.Command{Use: "mc1eda", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().Bool("json", false, "")
	for _, cmd := range []*cobra.Command{AnalyzeCmd, ConfigCmd, MetricsCmd, VersionCmd} {
		resetFlags(cmd)
		root.AddCommand(cmd)
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestAnalyze_WritesOutputs(t *testing.T) {
	input := edatest.ScenarioDoc().Write(t)
	outDir := filepath.Join(t.TempDir(), "results")

	out, err := execute(t, "analyze", "--input", input, "--out", outDir, "--charts")
	require.NoError(t, err)
	assert.Contains(t, out, "Graph overview")
	assert.Contains(t, out, "Analysis complete")

	for _, name := range []string{
		config.DefaultSongsAlbumsCSV,
		config.DefaultNetworkMetrics,
		config.DefaultEdgeAnalysis,
	} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	m, err := report.ReadNetworkMetrics(filepath.Join(outDir, config.DefaultNetworkMetrics))
	require.NoError(t, err)
	assert.Equal(t, 3, m.NodeCount)
}

func TestAnalyze_JSON(t *testing.T) {
	input := edatest.ScenarioDoc().Write(t)
	outDir := t.TempDir()

	out, err := execute(t, "analyze", "--input", input, "--out", outDir, "--summary", "summary.json", "--json")
	require.NoError(t, err)

	var decoded struct {
		RunID   string   `json:"run_id"`
		Written []string `json:"written"`
		Report  struct {
			Overview struct {
				NodeCount int `json:"node_count"`
			} `json:"overview"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.NotEmpty(t, decoded.RunID)
	assert.Len(t, decoded.Written, 4)
	assert.Equal(t, 3, decoded.Report.Overview.NodeCount)
	assert.FileExists(t, filepath.Join(outDir, "summary.json"))
}

func TestAnalyze_MissingNodePolicy(t *testing.T) {
	input := edatest.NewDoc().Node("A", "Song", nil).Link("A", "ghost", "CoverOf").Write(t)

	t.Run("strict", func(t *testing.T) {
		outDir := t.TempDir()
		out, err := execute(t, "analyze", "--input", input, "--out", outDir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrReferentialIntegrity))
		assert.Contains(t, out, "--missing-nodes create")

		entries, err := os.ReadDir(outDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("create", func(t *testing.T) {
		outDir := t.TempDir()
		_, err := execute(t, "analyze", "--input", input, "--out", outDir, "--missing-nodes", "create")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(outDir, config.DefaultNetworkMetrics))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := execute(t, "analyze", "--input", input, "--missing-nodes", "ignore")
		assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	})
}

func TestAnalyze_EnvOverride(t *testing.T) {
	input := edatest.ScenarioDoc().Write(t)
	outDir := t.TempDir()
	t.Setenv("MC1EDA_INPUT_PATH", input)
	t.Setenv("MC1EDA_OUT", outDir)

	_, err := execute(t, "analyze")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, config.DefaultEdgeAnalysis))
}

func TestMetrics(t *testing.T) {
	dir := t.TempDir()
	want := report.NetworkMetrics{NodeCount: 3, EdgeCount: 1, Density: 1.0 / 6, WeaklyConnectedComponents: 2,
		StronglyConnectedComponents: 3, LargestWCCSize: 2, LargestSCCSize: 1}
	require.NoError(t, report.WriteNetworkMetrics(filepath.Join(dir, config.DefaultNetworkMetrics), want))

	t.Run("directory argument", func(t *testing.T) {
		out, err := execute(t, "metrics", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Strongly connected components")
		assert.Contains(t, out, "0.166667")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "metrics", filepath.Join(dir, config.DefaultNetworkMetrics), "--json")
		require.NoError(t, err)
		var got report.NetworkMetrics
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "metrics", filepath.Join(dir, "absent.json"))
		assert.True(t, errors.IsParseError(err))
	})
}

func TestConfigShow(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"toml", "missing_nodes = "},
		{"yaml", "missing_nodes: strict"},
		{"json", `"missing_nodes": "strict"`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Setenv("MC1EDA_MISSING_NODES", "")
			out, err := execute(t, "config", "show", "--format", tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "strict")
		})
	}

	_, err := execute(t, "config", "show", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	out, err := execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	t.Setenv("MC1EDA_MISSING_NODES", "sometimes")
	_, err = execute(t, "config", "validate")
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mc1eda")

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "go_version")
}
