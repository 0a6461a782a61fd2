package content

import "errors"

var (
	// ErrRecordNotFound is returned when no row matches.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateSlug is returned when the storage rejects a slug already in use.
	ErrDuplicateSlug = errors.New("slug already exists")
)
