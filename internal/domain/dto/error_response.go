package dto

import "time"

// ErrorResponse is the uniform JSON error envelope returned by all
// endpoints on failure.
//
// Detail carries the human-readable message; ErrorDetails carries the
// underlying error text when one is available. No internal error type
// leaks past the handler boundary.
type ErrorResponse struct {
	Detail       string    `json:"detail" example:"No data for JPY=X"`
	ErrorDetails string    `json:"error,omitempty" example:"context deadline exceeded"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// The err argument is optional; pass nil when there is no underlying cause.
func NewErrorResponse(detail string, err error) ErrorResponse {
	resp := ErrorResponse{
		Detail:    detail,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel
// through error-returning call chains when needed.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Detail + ": " + e.ErrorDetails
	}
	return e.Detail
}
