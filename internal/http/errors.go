package http

import (
	"fmt"

	"log-query/internal/shared/svcerrors"
)

const (
	codeBodyTooLarge           = "HTTP_1000"
	codeUnsupportedContentType = "HTTP_1001"
	codeLineTooLong            = "HTTP_1002"
)

func errBodyTooLarge(limit int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBodyTooLarge, fmt.Sprintf("request body exceeds %d bytes", limit), cause)
}

func errUnsupportedContentType(mediaType string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedContentType, fmt.Sprintf("unsupported content type %q: send text/plain lines", mediaType), nil)
}

func errLineTooLong(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLineTooLong, "request body contains a line that is too long", cause)
}
