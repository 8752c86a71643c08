// ABOUTME: Typed error for vector database failures
// ABOUTME: StoreError carries the failing operation and collection name
package vecstore

import "fmt"

// StoreError indicates a vector database operation failed. The wrapped
// error identifies which external call failed and why.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("vector store %s (collection %q): %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
