package app

import (
	"fmt"

	"log-query/internal/aggregators"
	"log-query/internal/mappers"
	"log-query/internal/shared/configs"
	"log-query/internal/shared/filestorages"
	"log-query/internal/stores"
)

func newAggregationEngine(config *configs.Config) aggregators.AggregationEngine {
	return aggregators.NewAggregationEngine(
		mappers.NewRecordMapper(),
		aggregators.NewStatisticsMerger(),
		aggregators.NewEngineOptions(config.Aggregation),
	)
}

// newResultStore returns nil when output.store_dir is empty.
func newResultStore(config *configs.Config) (stores.AggregationResultStore, error) {
	if config.Output.StoreDir == "" {
		return nil, nil
	}
	fileStorage, err := filestorages.NewFileStorage(config.Output.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return stores.NewAggregationResultStore(fileStorage), nil
}
