// Package pipeline runs the analysis stages in order: load the node-link
// graph, extract the attribute tables, aggregate the report and emit the
// output files. Nothing is written unless load succeeds.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/camilacod/DataVizVastProject/config"
	"github.com/camilacod/DataVizVastProject/errors"
	"github.com/camilacod/DataVizVastProject/extract"
	"github.com/camilacod/DataVizVastProject/graph"
	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
	"github.com/camilacod/DataVizVastProject/internal/version"
	"github.com/camilacod/DataVizVastProject/logger"
	"github.com/camilacod/DataVizVastProject/metrics"
	"github.com/camilacod/DataVizVastProject/report"
)

// Result is everything one run produced
type Result struct {
	RunID   string
	Input   string
	Stats   graph.Stats
	Tables  extract.Tables
	Report  *metrics.Report
	Written []string // output paths in write order
}

// Run executes the pipeline for cfg. The context is checked between stages.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	ctx = logger.WithRunID(ctx, runID)
	ctx = logger.WithComponent(ctx, "pipeline")
	log := logger.LoggerFromContext(ctx)
	start := time.Now()

	res := &Result{RunID: runID, Input: cfg.GetInputPath()}

	// Load
	if err := checkpoint(ctx, grapherr.StageLoad); err != nil {
		return nil, err
	}
	stageStart := time.Now()
	g, err := graph.LoadFile(res.Input, graph.LoadOptions{
		MissingNodes: graph.MissingNodePolicy(cfg.Analysis.MissingNodes),
		Logger:       log.Named("graph.loader"),
	})
	if err != nil {
		return nil, err
	}
	res.Stats = g.Stats()
	stageDone(log, grapherr.StageLoad, stageStart,
		logger.FieldNodes, res.Stats.TotalNodes,
		logger.FieldEdges, res.Stats.TotalEdges)

	// Extract
	if err := checkpoint(ctx, grapherr.StageExtract); err != nil {
		return nil, err
	}
	stageStart = time.Now()
	res.Tables = extract.Extract(g)
	stageDone(log, grapherr.StageExtract, stageStart,
		"works", len(res.Tables.Works),
		logger.FieldEdges, len(res.Tables.Edges))

	// Aggregate
	if err := checkpoint(ctx, grapherr.StageAggregate); err != nil {
		return nil, err
	}
	stageStart = time.Now()
	res.Report = metrics.Aggregate(g, res.Tables, metrics.Options{
		TopN:           cfg.Analysis.TopN,
		TopGenres:      cfg.Analysis.TopGenres,
		TimelineGenres: cfg.Analysis.TimelineGenres,
	})
	stageDone(log, grapherr.StageAggregate, stageStart)
	warnDataQuality(log, res.Report.DataQuality)

	// Emit
	if err := checkpoint(ctx, grapherr.StageEmit); err != nil {
		return nil, err
	}
	stageStart = time.Now()
	if err := emit(cfg, res); err != nil {
		return res, err
	}
	stageDone(log, grapherr.StageEmit, stageStart, logger.FieldCount, len(res.Written))

	log.Infow("Analysis complete", logger.FieldDurationMS, time.Since(start).Milliseconds())
	return res, nil
}

// output is one artifact and the function that writes it
type output struct {
	path  string
	write func(path string) error
}

func emit(cfg *config.Config, res *Result) error {
	outputs := []output{
		{cfg.SongsAlbumsCSVPath(), func(p string) error {
			return report.WriteSongsAlbumsCSV(p, res.Tables.Works)
		}},
		{cfg.NetworkMetricsPath(), func(p string) error {
			return report.WriteNetworkMetrics(p, report.NetworkMetricsFrom(res.Report))
		}},
		{cfg.EdgeAnalysisPath(), func(p string) error {
			return report.WriteEdgeAnalysis(p, report.EdgeAnalysisFrom(res.Report))
		}},
	}
	if path := cfg.SummaryPath(); path != "" {
		outputs = append(outputs, output{path, func(p string) error {
			return report.WriteSummary(p, report.Summary{
				RunID:       res.RunID,
				Input:       res.Input,
				GeneratedAt: time.Now().UTC(),
				Version:     version.Get().Version,
				Report:      res.Report,
			})
		}})
	}

	for _, out := range outputs {
		if err := out.write(out.path); err != nil {
			return err
		}
		res.Written = append(res.Written, out.path)
	}
	return nil
}

// checkpoint stops the run if the context was cancelled before stage
func checkpoint(ctx context.Context, stage grapherr.Stage) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "cancelled before %s", stage)
	}
	return nil
}

func stageDone(log *zap.SugaredLogger, stage grapherr.Stage, start time.Time, kv ...interface{}) {
	fields := append([]interface{}{
		logger.FieldStage, stage,
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	}, kv...)
	log.Infow("Stage finished", fields...)
}

// warnDataQuality reports excluded values; they never fail the run
func warnDataQuality(log *zap.SugaredLogger, q metrics.DataQuality) {
	if q.Excluded() == 0 {
		return
	}
	log.Warnw("Excluded non-numeric year values",
		logger.FieldStage, grapherr.StageAggregate,
		logger.FieldExcluded, q.Excluded(),
		"release_dates", q.ExcludedReleaseYears,
		"notoriety_dates", q.ExcludedNotorietyYears)
}
