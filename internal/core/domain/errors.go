package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested contact does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Store errors.

	// ErrCorruptStore indicates the backing contact file exists but cannot
	// be parsed. The store refuses to guess; the caller decides whether to
	// repair or discard the file.
	ErrCorruptStore = errors.New("contact store is corrupt")

	// ErrStoreWrite indicates persisting the contact collection failed.
	// The previous on-disk version is left intact.
	ErrStoreWrite = errors.New("contact store write failed")

	// Research errors.

	// ErrSummariserUnavailable indicates no LLM summariser is configured.
	// Research degrades to a manual-notes brief without one.
	ErrSummariserUnavailable = errors.New("summariser unavailable")

	// ErrNewsUnavailable indicates no news provider is configured.
	ErrNewsUnavailable = errors.New("news provider unavailable")
)
