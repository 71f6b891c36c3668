package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/camilacod/DataVizVastProject/config"
	"github.com/camilacod/DataVizVastProject/display"
	"github.com/camilacod/DataVizVastProject/errors"
	"github.com/camilacod/DataVizVastProject/report"
)

// MetricsCmd reads back a network_metrics.json written by analyze
var MetricsCmd = &cobra.Command{
	Use:   "metrics [DIR|FILE]",
	Short: "Show the network metrics from a previous run",
	Long: `Read network_metrics.json from a previous analyze run and print it.

The argument may be the output directory or the metrics file itself.
Without an argument the configured output location is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMetrics,
}

func runMetrics(cmd *cobra.Command, args []string) error {
	path, err := metricsPath(args)
	if err != nil {
		return err
	}

	m, err := report.ReadNetworkMetrics(path)
	if err != nil {
		return reportFailure(cmd, err)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.FprintJSON(cmd.OutOrStdout(), m)
	}

	rows := [][]string{
		{"Metric", "Value"},
		{"Nodes", fmt.Sprint(m.NodeCount)},
		{"Edges", fmt.Sprint(m.EdgeCount)},
		{"Density", fmt.Sprintf("%.6f", m.Density)},
		{"Weakly connected components", fmt.Sprint(m.WeaklyConnectedComponents)},
		{"Strongly connected components", fmt.Sprint(m.StronglyConnectedComponents)},
		{"Largest WCC", fmt.Sprint(m.LargestWCCSize)},
		{"Largest SCC", fmt.Sprint(m.LargestSCCSize)},
	}
	pterm.DefaultSection.WithWriter(cmd.OutOrStdout()).Println(path)
	return pterm.DefaultTable.WithHasHeader().WithData(rows).WithWriter(cmd.OutOrStdout()).Render()
}

// metricsPath resolves the argument to a metrics file
func metricsPath(args []string) (string, error) {
	if len(args) == 0 {
		cfg, err := config.Load()
		if err != nil {
			return "", errors.Wrap(err, "failed to load config")
		}
		return cfg.NetworkMetricsPath(), nil
	}

	if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
		return filepath.Join(args[0], config.DefaultNetworkMetrics), nil
	}
	return args[0], nil
}
