package errs

import "errors"

// Error classes shared by the usecase layers. Concrete sentinels are marked
// with one of these so handlers can map them without knowing every rule.
var (
	// ErrNotFound marks a referenced client, space, resource or reservation that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a rejected request. The marked error's message names the rule.
	ErrValidation = errors.New("validation rejected")

	// ErrConflict marks a uniqueness violation on catalog entities.
	ErrConflict = errors.New("conflict")

	// ErrPersistence marks an unclassified store failure.
	ErrPersistence = errors.New("persistence failure")
)
