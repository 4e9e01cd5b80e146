package llm

import (
	"fmt"
)

// ErrUnreachable indicates the generation service could not be reached:
// DNS failure, connection refused, timeout, TLS trouble.
type ErrUnreachable struct {
	Err error
}

func (e *ErrUnreachable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service unreachable: %v", e.Err)
	}
	return "generation service unreachable"
}

func (e *ErrUnreachable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the service answered but the candidate list
// was missing, empty, or carried no text content.
type ErrEmptyResponse struct {
	Err error
}

func (e *ErrEmptyResponse) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("empty generation response: %v", e.Err)
	}
	return "empty generation response"
}

func (e *ErrEmptyResponse) Unwrap() error { return e.Err }

// ErrService indicates the service returned a non-success status code.
type ErrService struct {
	Code int
	Err  error
}

func (e *ErrService) Error() string {
	return fmt.Sprintf("generation service error (HTTP %d): %v", e.Code, e.Err)
}

func (e *ErrService) Unwrap() error { return e.Err }
