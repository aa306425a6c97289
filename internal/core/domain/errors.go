package domain

import (
	"errors"
	"fmt"
)

// ErrCatalogUnavailable means no catalog could be produced at all, e.g. the
// asset root is missing.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CategoryUnavailableError reports a category directory that exists but
// could not be read. It never fails a whole catalog.
type CategoryUnavailableError struct {
	Category Category
	Path     string
	Err      error
}

func (e *CategoryUnavailableError) Error() string {
	return fmt.Sprintf("category %s unavailable (%s): %v", e.Category, e.Path, e.Err)
}

func (e *CategoryUnavailableError) Unwrap() error {
	return e.Err
}
