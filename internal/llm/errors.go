// ABOUTME: Typed errors for embedding and completion calls
// ABOUTME: ServiceError for backend failures, InvalidInputError for bad input
package llm

import "fmt"

// ServiceError indicates the embedding or completion backend failed
// (network, auth, rate limit). The wrapped error identifies the cause.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("llm %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// InvalidInputError indicates the input text was unusable before any
// request was made (empty, or over the model's token limit).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
