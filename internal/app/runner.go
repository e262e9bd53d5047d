package app

import (
	"context"
	"fmt"
	"io"

	"log-query/internal/aggregators"
	"log-query/internal/emitters"
	"log-query/internal/shared/configs"
	"log-query/internal/shared/loggers"
	"log-query/internal/sources"
	"log-query/internal/stores"
)

// Runner is the batch CLI: one aggregation over a file or the built-in sample,
// written to an output stream.
type Runner struct {
	logger      loggers.Logger
	engine      aggregators.AggregationEngine
	emitter     emitters.ResultEmitter
	resultStore stores.AggregationResultStore
}

// NewRunner wires a Runner from config. Logs go to logOutput so the result
// stream stays clean.
func NewRunner(config *configs.Config, logOutput io.Writer) (*Runner, error) {
	logger, err := loggers.NewWithWriter(config.Log.Level, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With().
		Str(loggers.FieldApp, "log-query").
		Str(loggers.FieldComponent, "cli").
		Logger()

	emitter, err := emitters.NewResultEmitter(config.Output.Format)
	if err != nil {
		return nil, err
	}

	resultStore, err := newResultStore(config)
	if err != nil {
		return nil, err
	}

	return &Runner{
		logger:      logger,
		engine:      newAggregationEngine(config),
		emitter:     emitter,
		resultStore: resultStore,
	}, nil
}

// Run aggregates inputPath, or the built-in sample when inputPath is empty, and
// writes the result to out. Nothing is written to out when aggregation fails.
func (r *Runner) Run(ctx context.Context, inputPath string, out io.Writer) error {
	ctx = r.logger.WithContext(ctx)

	source := sources.NewSampleLineSource()
	if inputPath != "" {
		source = sources.NewFileLineSource(inputPath)
	}

	result, report, err := r.engine.Aggregate(ctx, source)
	if err != nil {
		return err
	}

	if r.resultStore != nil {
		if err := r.resultStore.Put(ctx, report.RunID, result); err != nil {
			return aggregators.ErrInternalResultStoreFailed(err)
		}
		r.logger.Info().
			Str(loggers.FieldRunID, report.RunID).
			Msg("aggregation result stored")
	}

	if err := r.emitter.Emit(out, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
