package aggregators

import (
	"fmt"

	"log-query/internal/shared/svcerrors"
)

const (
	CodeInternalEngineFailed      = "AGG_9000"
	CodeInternalResultStoreFailed = "AGG_9001"
)

// errInternalEngineFailed returns an error when the engine fails for a reason other than a record error.
func errInternalEngineFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(CodeInternalEngineFailed, fmt.Errorf("engineFailed: %w", cause))
}

// ErrInternalResultStoreFailed returns an error when persisting a finished result fails.
func ErrInternalResultStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(CodeInternalResultStoreFailed, fmt.Errorf("resultStoreFailed: %w", cause))
}

// errRecordAtLine prefixes a record error's message with its 1-based line number.
// The code, category and cause are kept.
func errRecordAtLine(lineNumber int64, err error) *svcerrors.ServiceError {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		return errInternalEngineFailed(fmt.Errorf("line %d: %w", lineNumber, err))
	}
	withLine := *svcErr
	withLine.Message = fmt.Sprintf("line %d: %s", lineNumber, svcErr.Message)
	return &withLine
}

// errorCode returns the service code carried by err, or the undefined internal code.
func errorCode(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return svcerrors.NewInternalErrorUndefined(err).Code
}
