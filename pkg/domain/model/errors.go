package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for domain operations
var (
	ErrProgressNotFound = goerr.New("migration progress not found")
	ErrInvalidPage      = goerr.New("invalid page request")
	ErrNothingToResume  = goerr.New("progress has no pending step")
)

// UpstreamError is a failure reported by an external platform service. Code and
// Message are copied from the response body when the service supplied them.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Code       string
	Message    string
}

// Error implements error
func (e *UpstreamError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%s failed: code %s", e.Operation, e.Code)
	default:
		return fmt.Sprintf("%s failed: status %d", e.Operation, e.StatusCode)
	}
}
