package aggregators

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"log-query/internal/events"
	"log-query/internal/mappers"
	"log-query/internal/models"
	"log-query/internal/shared/configs"
	"log-query/internal/shared/loggers"
	"log-query/internal/shared/metrics"
	"log-query/internal/shared/svcerrors"
	"log-query/internal/shared/ulid"
	"log-query/internal/sources"
	"log-query/internal/streams"

	"golang.org/x/sync/errgroup"
)

// AggregationEngine runs parse, key extraction, filtering, grouping and merging
// over one input and returns the merged result.
//
//go:generate mockgen -source=aggregation_engine.go -destination=./mocks/aggregation_engine_mock.go -package=mocks
type AggregationEngine interface {
	// Aggregate blocks until every line of source has been reduced. The returned
	// result is complete: nothing is emitted before all reducers have finished.
	// On error the partial state is discarded and both result and report are nil.
	Aggregate(ctx context.Context, source sources.LineSource) (models.AggregationResult, *models.RunReport, error)
}

// EngineOptions controls parallelism and the record error policy.
type EngineOptions struct {
	MapperCount       int
	PartitionCount    int
	ChunkSize         int
	MapSideCombine    bool
	RecordErrorPolicy string
}

func NewEngineOptions(cfg configs.AggregationConfig) EngineOptions {
	return EngineOptions{
		MapperCount:       cfg.MapperCount,
		PartitionCount:    cfg.PartitionCount,
		ChunkSize:         cfg.ChunkSize,
		MapSideCombine:    cfg.MapSideCombine,
		RecordErrorPolicy: cfg.OnRecordError,
	}
}

func (o EngineOptions) withDefaults() EngineOptions {
	if o.MapperCount < 1 {
		o.MapperCount = 1
	}
	if o.PartitionCount < 1 {
		o.PartitionCount = 1
	}
	if o.ChunkSize < 1 {
		o.ChunkSize = 1
	}
	if o.RecordErrorPolicy != configs.RecordErrorPolicyAbort {
		o.RecordErrorPolicy = configs.RecordErrorPolicySkip
	}
	return o
}

type aggregationEngine struct {
	recordMapper mappers.RecordMapper
	merger       StatisticsMerger
	options      EngineOptions
}

func NewAggregationEngine(recordMapper mappers.RecordMapper, merger StatisticsMerger, options EngineOptions) AggregationEngine {
	return &aggregationEngine{
		recordMapper: recordMapper,
		merger:       merger,
		options:      options.withDefaults(),
	}
}

// lineChunk is one mapper task: consecutive lines starting at firstLine (1-based).
type lineChunk struct {
	index     int
	firstLine int64
	lines     []string
}

// recordTally accumulates per-worker accounting, merged into the report once the
// worker is done.
type recordTally struct {
	filtered int64
	skipped  map[string]int64

	// abortLine and abortErr hold the record that stopped the worker under the
	// abort policy.
	abortLine int64
	abortErr  error
}

func (e *aggregationEngine) Aggregate(ctx context.Context, source sources.LineSource) (models.AggregationResult, *models.RunReport, error) {
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldStage, "aggregation_engine").
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldInputSource, source.Name()).
		Logger()
	ctx = logger.WithContext(ctx)
	start := time.Now()

	logger.Debug().
		Int("mapper_count", e.options.MapperCount).
		Int("partition_count", e.options.PartitionCount).
		Int("chunk_size", e.options.ChunkSize).
		Bool("map_side_combine", e.options.MapSideCombine).
		Str("on_record_error", e.options.RecordErrorPolicy).
		Msg("aggregation started")

	report := models.NewRunReport(runID)
	queue := streams.NewPartitionedQueue[events.PartialStatsEvent](e.options.PartitionCount, e.options.ChunkSize)
	producer := streams.NewPartialStatsProducer(queue)
	consumer := streams.NewPartialStatsConsumer(queue, e.merger)
	chunks := make(chan lineChunk, e.options.MapperCount)

	var (
		result   models.AggregationResult
		tallyMux sync.Mutex

		abortLine int64
		abortErr  error
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(chunks)
		linesRead, err := e.readChunks(groupCtx, source, chunks)
		report.LinesRead = linesRead
		return err
	})

	group.Go(func() error {
		mapperGroup, mapperCtx := errgroup.WithContext(groupCtx)
		for i := 0; i < e.options.MapperCount; i++ {
			mapperGroup.Go(func() error {
				tally := recordTally{skipped: make(map[string]int64)}
				err := e.runMapperWorker(mapperCtx, chunks, producer, &tally)

				tallyMux.Lock()
				report.RecordsFiltered += tally.filtered
				for code, n := range tally.skipped {
					report.RecordsSkipped[code] += n
				}
				if tally.abortErr != nil && (abortErr == nil || tally.abortLine < abortLine) {
					abortLine, abortErr = tally.abortLine, tally.abortErr
				}
				tallyMux.Unlock()
				return err
			})
		}
		err := mapperGroup.Wait()
		// Reducers drain and exit once every partition is closed.
		queue.Close()
		return err
	})

	group.Go(func() error {
		var err error
		result, err = consumer.Run(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		// Chunks are taken in order and a taken chunk is always mapped to the end,
		// so the lowest failing line seen here is the first bad record of the input.
		// Internal failures still win over record errors.
		if svcErr, ok := svcerrors.AsServiceError(err); abortErr != nil && (!ok || !svcErr.IsInternalError()) {
			err = abortErr
		}
		code := errorCode(err)
		metricRunsTotal.WithLabelValues(code).Inc()
		logger.Error().
			Err(err).
			Str(loggers.FieldErrorCode, code).
			Dur(loggers.FieldDuration, time.Since(start)).
			Msg("aggregation failed")
		return nil, nil, err
	}

	report.Groups = len(result)
	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricGroupsEmittedTotal.Add(float64(report.Groups))

	logger.Info().
		Int64("lines_read", report.LinesRead).
		Int64("records_aggregated", report.RecordsAggregated()).
		Int64("records_filtered", report.RecordsFiltered).
		Interface("records_skipped", report.RecordsSkipped).
		Int("groups", report.Groups).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("aggregation finished")

	return result, report, nil
}

// readChunks splits the source into ChunkSize-line tasks. It returns the number
// of lines read.
func (e *aggregationEngine) readChunks(ctx context.Context, source sources.LineSource, out chan<- lineChunk) (int64, error) {
	var (
		linesRead int64
		index     int
		pending   = lineChunk{firstLine: 1, lines: make([]string, 0, e.options.ChunkSize)}
	)

	send := func() error {
		select {
		case out <- pending:
		case <-ctx.Done():
			return ctx.Err()
		}
		index++
		pending = lineChunk{index: index, firstLine: linesRead + 1, lines: make([]string, 0, e.options.ChunkSize)}
		return nil
	}

	err := source.Lines(ctx, func(line string) error {
		pending.lines = append(pending.lines, line)
		linesRead++
		if len(pending.lines) == e.options.ChunkSize {
			return send()
		}
		return nil
	})
	if err != nil {
		return linesRead, err
	}
	if len(pending.lines) > 0 {
		return linesRead, send()
	}
	return linesRead, nil
}

func (e *aggregationEngine) runMapperWorker(ctx context.Context, chunks <-chan lineChunk, producer streams.PartialStatsProducer, tally *recordTally) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chunk, ok := <-chunks:
			if !ok {
				return nil
			}
			partials, err := e.mapChunk(ctx, chunk, tally)
			if err != nil {
				return err
			}
			if err := producer.Produce(ctx, partials); err != nil {
				return err
			}
		}
	}
}

// mapChunk applies the record mapper and the filter to every line of chunk and
// returns the partial events to publish. With map-side combine the events are
// pre-merged so each key appears at most once per chunk.
func (e *aggregationEngine) mapChunk(ctx context.Context, chunk lineChunk, tally *recordTally) (partials []events.PartialStatsEvent, err error) {
	logger := loggers.Ctx(ctx)
	defer func() {
		if r := recover(); r != nil {
			var panicErr error
			if rErr, ok := r.(error); ok {
				panicErr = rErr
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			partials = nil
			err = svcerrors.NewInternalErrorPanic(fmt.Errorf("mapper panic in chunk %d: %w\n%s", chunk.index, panicErr, debug.Stack()))
		}
	}()

	var combined models.AggregationResult
	if e.options.MapSideCombine {
		combined = make(models.AggregationResult)
	}
	partials = make([]events.PartialStatsEvent, 0, len(chunk.lines))

	for i, line := range chunk.lines {
		lineNumber := chunk.firstLine + int64(i)
		key, stats, mapErr := e.recordMapper.Map(line)
		if mapErr != nil {
			recordErr := errRecordAtLine(lineNumber, mapErr)
			if e.options.RecordErrorPolicy == configs.RecordErrorPolicyAbort {
				tally.abortLine, tally.abortErr = lineNumber, recordErr
				return nil, recordErr
			}
			tally.skipped[recordErr.Code]++
			metricRecordsSkippedTotal.WithLabelValues(recordErr.Code).Inc()
			logger.Warn().
				Err(recordErr).
				Int64(loggers.FieldLineNumber, lineNumber).
				Str(loggers.FieldErrorCode, recordErr.Code).
				Msg("skipped record")
			continue
		}

		if !KeepDefined(key) {
			tally.filtered++
			metricRecordsFilteredTotal.Inc()
			continue
		}

		groupKey, _ := key.Get()
		if combined != nil {
			e.merger.MergeInto(combined, groupKey, stats)
			continue
		}
		partials = append(partials, events.PartialStatsEvent{Key: groupKey, Stats: stats, ChunkIndex: chunk.index})
	}

	for groupKey, stats := range combined {
		partials = append(partials, events.PartialStatsEvent{Key: groupKey, Stats: stats, ChunkIndex: chunk.index})
	}
	return partials, nil
}
