package http

import (
	"mime"
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerRunID       = "x-run-id"
	headerContentType = "content-type"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// mediaType returns the lower-cased media type without parameters, or "" when absent.
func mediaType(r *http.Request) string {
	value := strings.TrimSpace(r.Header.Get(headerContentType))
	if value == "" {
		return ""
	}
	parsed, _, err := mime.ParseMediaType(value)
	if err != nil {
		return strings.ToLower(value)
	}
	return parsed
}
