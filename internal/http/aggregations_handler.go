package http

import (
	"bufio"
	"errors"
	"net/http"

	"log-query/internal/aggregators"
	"log-query/internal/models"
	"log-query/internal/shared/loggers"
	"log-query/internal/sources"
	"log-query/internal/stores"
)

// AggregationResponse is the body of a successful POST /aggregations.
type AggregationResponse struct {
	RunID  string            `json:"runId"`
	Groups []models.Group    `json:"groups"`
	Report *models.RunReport `json:"report"`
}

type aggregationsHandler struct {
	engine       aggregators.AggregationEngine
	resultStore  stores.AggregationResultStore // nil disables persistence
	maxBodyBytes int64
}

func NewAggregationsHandler(engine aggregators.AggregationEngine, resultStore stores.AggregationResultStore, maxBodyBytes int64) AppHttpHandler {
	return &aggregationsHandler{
		engine:       engine,
		resultStore:  resultStore,
		maxBodyBytes: maxBodyBytes,
	}
}

// Handle processes POST /aggregations. The body is newline separated raw log lines.
func (h *aggregationsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	switch mt := mediaType(r); mt {
	case "", "text/plain", "application/octet-stream":
	default:
		return errUnsupportedContentType(mt)
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	result, report, err := h.engine.Aggregate(r.Context(), sources.NewReaderLineSource("http_body", body))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return errBodyTooLarge(maxBytesErr.Limit, err)
		case errors.Is(err, bufio.ErrTooLong):
			return errLineTooLong(err)
		}
		return err
	}

	if h.resultStore != nil {
		if err := h.resultStore.Put(r.Context(), report.RunID, result); err != nil {
			return aggregators.ErrInternalResultStoreFailed(err)
		}
		loggers.Ctx(r.Context()).Debug().
			Str(loggers.FieldRunID, report.RunID).
			Msg("aggregation result stored")
	}

	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetRunID(report.RunID)
	}
	w.Header().Set(headerRunID, report.RunID)
	writeJSON(w, http.StatusOK, AggregationResponse{
		RunID:  report.RunID,
		Groups: result.Groups(),
		Report: report,
	})
	return nil
}
