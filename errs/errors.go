// Package errs defines the error taxonomy used across the validation
// pipeline. Provider and LLM failures are recovered inside their stage;
// storage failures and not-found conditions cross the gateway boundary.
package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups for unknown or malformed identifiers. A
// malformed identifier is deliberately indistinguishable from a missing one.
var ErrNotFound = errors.New("not found")

// ErrUnsupportedURL marks post URLs whose platform cannot be served.
var ErrUnsupportedURL = errors.New("unsupported post url")

// ProviderError wraps a failed search/scrape/community call.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError wraps err with the provider name.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// LLMError wraps a failed or unparseable LLM generation call.
type LLMError struct {
	Op  string
	Err error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm %s: %v", e.Op, e.Err)
}

func (e *LLMError) Unwrap() error { return e.Err }

// NewLLMError wraps err with the operation name.
func NewLLMError(op string, err error) *LLMError {
	return &LLMError{Op: op, Err: err}
}

// StorageError wraps persistence failures. It is fatal for the operation
// that triggered it and is never retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err with the storage operation name.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
