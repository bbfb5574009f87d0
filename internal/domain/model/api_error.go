package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an ApiError for callers that need more than the HTTP
// status, e.g. tests and the batch fetch logging.
type ErrorKind string

const (
	KindConfig       ErrorKind = "config"
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindUpstreamAuth ErrorKind = "upstream_auth"
	KindUpstream     ErrorKind = "upstream"
	KindRateLimit    ErrorKind = "rate_limit"
	KindStore        ErrorKind = "store"
)

// ApiError carries the error classification and the HTTP status it maps to.
// Single-spot operations surface it unchanged to the HTTP layer.
type ApiError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

// NewConfigError reports a missing or unusable configuration value. It is
// fatal to the call, not to the process.
func NewConfigError(message string) *ApiError {
	return &ApiError{Kind: KindConfig, StatusCode: http.StatusInternalServerError, Message: message}
}

// NewValidationError reports malformed or out-of-range caller input.
func NewValidationError(message string) *ApiError {
	return &ApiError{Kind: KindValidation, StatusCode: http.StatusBadRequest, Message: message}
}

// NewNotFoundError reports an absent spot, weather record or geocoded city.
func NewNotFoundError(message string) *ApiError {
	return &ApiError{Kind: KindNotFound, StatusCode: http.StatusNotFound, Message: message}
}

// NewUpstreamAuthError reports a provider credential rejection. Surfaced as a
// server error; the credential is ours, not the caller's.
func NewUpstreamAuthError(message string) *ApiError {
	return &ApiError{Kind: KindUpstreamAuth, StatusCode: http.StatusInternalServerError, Message: message}
}

// NewUpstreamError reports a provider failure with the provider's status.
func NewUpstreamError(statusCode int, message string) *ApiError {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &ApiError{Kind: KindUpstream, StatusCode: statusCode, Message: message}
}

// NewRateLimitError reports provider throttling that survived the retry
// ladder. The 429 passes through to the caller.
func NewRateLimitError(message string) *ApiError {
	return &ApiError{Kind: KindRateLimit, StatusCode: http.StatusTooManyRequests, Message: message}
}

// NewStoreError wraps a persistence failure. Never swallowed for single-spot
// requests.
func NewStoreError(message string, err error) *ApiError {
	return &ApiError{Kind: KindStore, StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// AsApiError unwraps err into an *ApiError when possible.
func AsApiError(err error) (*ApiError, bool) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HTTPStatus maps any error to the response status: classified errors keep
// their status, everything else is a 500.
func HTTPStatus(err error) int {
	if apiErr, ok := AsApiError(err); ok {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsKind reports whether err is an ApiError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsApiError(err)
	return ok && apiErr.Kind == kind
}
