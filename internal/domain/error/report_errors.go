// Package error defines domain-specific errors for the Farm Manager application.
package error

import "errors"

// Report domain errors.
var (
	// ErrReportAggregationFailed is returned when any aggregate query behind a report fails.
	ErrReportAggregationFailed = errors.New("report aggregation failed")

	// ErrReportCacheUnavailable is returned when the report cache cannot be read or written.
	ErrReportCacheUnavailable = errors.New("report cache unavailable")

	// ErrTooManyRequests is returned when a client exceeds the report rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Throttling errors (03XXXX)
	ErrCodeReportRateLimited ReportErrorCode = "RPT-030001"

	// Internal errors (99XXXX)
	ErrCodeReportAggregationFailed ReportErrorCode = "RPT-990001"
	ErrCodeReportCacheFailure      ReportErrorCode = "RPT-990002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
