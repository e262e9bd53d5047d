package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"log-query/internal/models"
	"log-query/internal/shared/filestorages"
)

var ErrResultNotFound = errors.New("aggregation result not found")

// AggregationResultStore persists finished results, one immutable document per run.
//
//go:generate mockgen -source=aggregation_result_store.go -destination=./mocks/aggregation_result_store_mock.go -package=mocks
type AggregationResultStore interface {
	// Put fails with filestorages.ErrFileAlreadyExists if runID was already stored.
	Put(ctx context.Context, runID string, result models.AggregationResult) error
	Get(ctx context.Context, runID string) (models.AggregationResult, error)
}

// storedAggregationResult is the on-disk document.
type storedAggregationResult struct {
	RunID  string         `json:"runId"`
	Groups []models.Group `json:"groups"`
}

type aggregationResultStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewAggregationResultStore(fileStorage filestorages.FileStorage) AggregationResultStore {
	return &aggregationResultStore{fileStorage: fileStorage, dir: "aggregation-results"}
}

func (s *aggregationResultStore) Put(ctx context.Context, runID string, result models.AggregationResult) error {
	jsonData, err := json.Marshal(storedAggregationResult{RunID: runID, Groups: result.Groups()})
	if err != nil {
		return fmt.Errorf("failed to marshal aggregation result: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(runID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		return fmt.Errorf("failed to put aggregation result: %w", err)
	}
	return nil
}

func (s *aggregationResultStore) Get(ctx context.Context, runID string) (models.AggregationResult, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: run %s", ErrResultNotFound, runID)
		}
		return nil, fmt.Errorf("failed to get aggregation result: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read aggregation result: %w", err)
	}
	var stored storedAggregationResult
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal aggregation result: %w", err)
	}
	return models.NewAggregationResultFromGroups(stored.Groups), nil
}

func (s *aggregationResultStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, runID)
}
