package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/camilacod/DataVizVastProject/config"
	"github.com/camilacod/DataVizVastProject/display"
	"github.com/camilacod/DataVizVastProject/errors"
	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
	"github.com/camilacod/DataVizVastProject/logger"
	"github.com/camilacod/DataVizVastProject/metrics"
	"github.com/camilacod/DataVizVastProject/pipeline"
)

// AnalyzeCmd runs the full analysis pipeline
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the MC1 knowledge graph and write the derived files",
	Long: `Load a node-link graph, compute descriptive statistics and write:

  songs_albums_analysis.csv   one row per Song or Album
  network_metrics.json        node/edge counts, density, component counts
  edge_analysis.json          edge type counts and relation categories

With no flags and no config file the graph is read from ./MC1_graph.json
and the files are written to the working directory.

Examples:
  mc1eda analyze
  mc1eda analyze --input data/MC1_graph.json --out results
  mc1eda analyze --missing-nodes create --charts
  mc1eda analyze --summary summary.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

// analyzeFlags maps command flags onto configuration keys
var analyzeFlags = map[string]string{
	"input":         "input.path",
	"out":           "output.dir",
	"missing-nodes": "analysis.missing_nodes",
	"top":           "analysis.top_n",
	"charts":        "display.charts",
	"summary":       "output.summary",
}

func init() {
	AnalyzeCmd.Flags().StringP("input", "i", config.DefaultInputPath, "Node-link graph JSON file")
	AnalyzeCmd.Flags().StringP("out", "o", ".", "Directory for the output files")
	AnalyzeCmd.Flags().String("missing-nodes", config.MissingNodesStrict, "Edges to undeclared nodes: strict or create")
	AnalyzeCmd.Flags().Int("top", 10, "Nodes listed by in- and out-degree")
	AnalyzeCmd.Flags().Bool("charts", false, "Render bar charts in the console report")
	AnalyzeCmd.Flags().String("summary", "", "Also write the full report (.json, .yaml or .yml)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigWithFlags(cmd, config.GetViper(), analyzeFlags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	jsonOutput := display.ShouldOutputJSON(cmd)
	if !jsonOutput {
		pterm.Info.WithWriter(cmd.OutOrStdout()).Printfln("Analyzing %s", cfg.GetInputPath())
	}

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return reportFailure(cmd, err)
	}

	if jsonOutput {
		return display.FprintJSON(cmd.OutOrStdout(), analyzeOutput{
			RunID:   res.RunID,
			Input:   res.Input,
			Written: res.Written,
			Report:  res.Report,
		})
	}

	r := display.NewRenderer(cmd.OutOrStdout(), display.Options{
		Charts: cfg.Display.Charts,
		TopN:   cfg.Analysis.TopN,
	})
	r.Report(res.Report)
	r.Written(res.Written)
	pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("Analysis complete (run %s)", res.RunID)
	return nil
}

type analyzeOutput struct {
	RunID   string          `json:"run_id"`
	Input   string          `json:"input"`
	Written []string        `json:"written"`
	Report  *metrics.Report `json:"report"`
}

// loadConfigWithFlags binds flags that were set on the command line over
// the file and environment layers, then validates the result
func loadConfigWithFlags(cmd *cobra.Command, v *viper.Viper, flags map[string]string) (*config.Config, error) {
	for name, key := range flags {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, errors.Wrapf(err, "failed to bind --%s", name)
		}
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reportFailure logs a pipeline error with its structured fields and
// prints the user-facing message and hint
func reportFailure(cmd *cobra.Command, err error) error {
	if errors.Is(err, context.Canceled) {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).Println("Analysis cancelled")
		return err
	}

	ge, ok := grapherr.As(err)
	if !ok {
		logger.Errorw("Analysis failed", logger.FieldError, err)
		return err
	}

	logger.Errorw("Analysis failed", ge.ToLogFields()...)
	pterm.Error.WithWriter(cmd.ErrOrStderr()).Println(ge.ToUIMessage())
	if hint := ge.Hint(); hint != "" {
		pterm.Info.WithWriter(cmd.ErrOrStderr()).Println("Hint: " + hint)
	}
	return err
}
