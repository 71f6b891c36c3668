package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/camilacod/DataVizVastProject/cmd/mc1eda/commands"
	"github.com/camilacod/DataVizVastProject/config"
	"github.com/camilacod/DataVizVastProject/display"
	"github.com/camilacod/DataVizVastProject/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mc1eda",
	Short: "mc1eda - exploratory analysis of the MC1 music knowledge graph",
	Long: `mc1eda - exploratory analysis of the MC1 music knowledge graph.

Reads the node-link graph of people, songs, albums, record labels and
musical groups, and reports type distributions, notability, release
years, connectivity, degree and creative influence.

Available commands:
  analyze  - Run the analysis and write the output files
  metrics  - Show network_metrics.json from a previous run
  config   - Show and validate configuration
  version  - Show version information

Examples:
  mc1eda analyze                       # MC1_graph.json -> ./
  mc1eda analyze -o results --charts   # write into results/, draw charts
  mc1eda metrics results               # read results/network_metrics.json
  mc1eda config show --format yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		jsonLogs := display.ShouldOutputJSON(cmd)
		if cfg, err := config.Load(); err == nil && cfg.Log.JSON {
			jsonLogs = true
		}

		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debugw("Logger initialized",
			"verbosity", logger.LevelName(verbosity),
			"json", jsonLogs,
			"command", cmd.CommandPath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON instead of formatted tables")

	rootCmd.AddCommand(commands.AnalyzeCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.MetricsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
