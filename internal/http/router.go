package http

import (
	"net/http"

	"log-query/internal/aggregators"
	"log-query/internal/shared/loggers"
	"log-query/internal/shared/metrics"
	"log-query/internal/stores"

	"github.com/go-chi/chi/v5"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// ResultStore persists every successful run when non-nil.
	ResultStore  stores.AggregationResultStore
	MaxBodyBytes int64
}

// NewRouter creates and configures the HTTP router.
func NewRouter(engine aggregators.AggregationEngine, options RouterOptions, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	aggregationsHandler := NewAggregationsHandler(engine, options.ResultStore, options.MaxBodyBytes)

	router.Post("/aggregations", errorHandlingAdapter(aggregationsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
