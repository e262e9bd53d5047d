package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log-query/internal/aggregators"
	aggregatorMocks "log-query/internal/aggregators/mocks"
	"log-query/internal/mappers"
	"log-query/internal/models"
	"log-query/internal/shared/configs"
	"log-query/internal/shared/svcerrors"
	"log-query/internal/sources"
	storeMocks "log-query/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRunID = "01JFA9Z3N8Q7X5K2M4P6R8T0VW"

func sampleBody() string {
	return strings.Join(sources.SampleLines, "\n") + "\n"
}

func newRealEngine(policy string) aggregators.AggregationEngine {
	return aggregators.NewAggregationEngine(mappers.NewRecordMapper(), aggregators.NewStatisticsMerger(), aggregators.EngineOptions{
		MapperCount:       2,
		PartitionCount:    4,
		ChunkSize:         2,
		MapSideCombine:    true,
		RecordErrorPolicy: policy,
	})
}

func newTestRouter(t *testing.T, engine aggregators.AggregationEngine, options RouterOptions) http.Handler {
	t.Helper()
	return NewRouter(engine, options, newTestLogger(t, io.Discard))
}

func TestAggregationsHandler_Sample(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newRealEngine(configs.RecordErrorPolicySkip), RouterOptions{MaxBodyBytes: 1 << 20})

	req := httptest.NewRequest(http.MethodPost, "/aggregations", strings.NewReader(sampleBody()))
	req.Header.Set(headerContentType, "text/plain; charset=utf-8")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response AggregationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.NotEmpty(t, response.RunID)
	assert.Equal(t, response.RunID, rr.Header().Get(headerRunID))
	require.NotNil(t, response.Report)
	assert.Equal(t, int64(7), response.Report.LinesRead)
	assert.Equal(t, int64(1), response.Report.RecordsFiltered)

	got := models.NewAggregationResultFromGroups(response.Groups)
	want := models.AggregationResult{
		{ClientAddress: "10.20.30.40", ActorID: "u200", QueryID: "query1"}: models.NewStatistics(2, 500),
		{ClientAddress: "10.20.30.41", ActorID: "u300", QueryID: "query1"}: models.NewStatistics(2, 1200),
		{ClientAddress: "10.20.30.42", ActorID: "u400", QueryID: "query2"}: models.NewStatistics(2, 1400),
	}
	assert.True(t, want.Equal(got), "want=%v got=%v", want, got)
	assert.Equal(t, "10.20.30.40", response.Groups[0].ClientAddress, "groups are sorted by key")
}

func TestAggregationsHandler_EmptyBody(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newRealEngine(configs.RecordErrorPolicySkip), RouterOptions{MaxBodyBytes: 1 << 20})

	req := httptest.NewRequest(http.MethodPost, "/aggregations", http.NoBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.JSONEq(t, `[]`, string(body["groups"]))
}

func TestAggregationsHandler_AbortPolicyReturnsBadRequest(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newRealEngine(configs.RecordErrorPolicyAbort), RouterOptions{MaxBodyBytes: 1 << 20})

	req := httptest.NewRequest(http.MethodPost, "/aggregations", strings.NewReader("10.20.30.40,u200,500,query1\nbroken\n"))
	req.Header.Set(headerRequestID, "req-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "req-1", errorResponse.RequestID)
	assert.Equal(t, svcerrors.CategoryInvalidArgument, errorResponse.ErrorCategory)
	assert.Equal(t, mappers.CodeMalformedLine, errorResponse.ErrorCode)
	assert.True(t, strings.HasPrefix(errorResponse.ErrorDescription, "line 2: "), errorResponse.ErrorDescription)
}

func TestAggregationsHandler_BodyTooLarge(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newRealEngine(configs.RecordErrorPolicySkip), RouterOptions{MaxBodyBytes: 16})

	req := httptest.NewRequest(http.MethodPost, "/aggregations", strings.NewReader(sampleBody()))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, codeBodyTooLarge, errorResponse.ErrorCode)
	assert.Equal(t, "request body exceeds 16 bytes", errorResponse.ErrorDescription)
}

func TestAggregationsHandler_UnsupportedContentType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := aggregatorMocks.NewMockAggregationEngine(ctrl)
	handler := NewAggregationsHandler(engine, nil, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/aggregations", strings.NewReader(`{}`))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.Error(t, err)
	assert.True(t, svcerrors.HasCode(err, codeUnsupportedContentType))
}

func TestAggregationsHandler_StoresResult(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := aggregatorMocks.NewMockAggregationEngine(ctrl)
	resultStore := storeMocks.NewMockAggregationResultStore(ctrl)
	handler := NewAggregationsHandler(engine, resultStore, 1<<20)

	result := models.AggregationResult{
		{ClientAddress: "10.20.30.40", ActorID: "u200", QueryID: "query1"}: models.NewStatistics(1, 500),
	}
	report := models.NewRunReport(testRunID)
	report.LinesRead = 1
	report.Groups = 1

	engine.EXPECT().
		Aggregate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, source sources.LineSource) (models.AggregationResult, *models.RunReport, error) {
			var lines []string
			require.NoError(t, source.Lines(ctx, func(line string) error {
				lines = append(lines, line)
				return nil
			}))
			assert.Equal(t, []string{"10.20.30.40,u200,500,query1"}, lines)
			return result, report, nil
		})
	resultStore.EXPECT().Put(gomock.Any(), testRunID, result).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/aggregations", bytes.NewReader([]byte("10.20.30.40,u200,500,query1\n")))
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testRunID, rr.Header().Get(headerRunID))
}

func TestAggregationsHandler_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := aggregatorMocks.NewMockAggregationEngine(ctrl)
	resultStore := storeMocks.NewMockAggregationResultStore(ctrl)
	handler := NewAggregationsHandler(engine, resultStore, 1<<20)

	engine.EXPECT().
		Aggregate(gomock.Any(), gomock.Any()).
		Return(models.AggregationResult{}, models.NewRunReport(testRunID), nil)
	resultStore.EXPECT().Put(gomock.Any(), testRunID, gomock.Any()).Return(errors.New("disk full"))

	req := httptest.NewRequest(http.MethodPost, "/aggregations", http.NoBody)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.Error(t, err)
	assert.True(t, svcerrors.HasCode(err, aggregators.CodeInternalResultStoreFailed))
	assert.Contains(t, err.Error(), "disk full")
}

func TestAggregationsHandler_EngineErrorPassesThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := aggregatorMocks.NewMockAggregationEngine(ctrl)
	handler := NewAggregationsHandler(engine, nil, 1<<20)

	expectedErr := svcerrors.NewInternalError(aggregators.CodeInternalEngineFailed, errors.New("boom"))
	engine.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(nil, nil, expectedErr)

	req := httptest.NewRequest(http.MethodPost, "/aggregations", http.NoBody)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	assert.Equal(t, expectedErr, err)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newRealEngine(configs.RecordErrorPolicySkip), RouterOptions{MaxBodyBytes: 1 << 20})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "log_query_")
}
