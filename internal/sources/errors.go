package sources

import (
	"fmt"

	"log-query/internal/shared/svcerrors"
)

const (
	CodeInputUnavailable = "SRC_9000"
)

// errInputUnavailable returns an error when the input cannot be opened or read.
func errInputUnavailable(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(CodeInputUnavailable, fmt.Errorf("inputUnavailable %s: %w", name, cause))
}
