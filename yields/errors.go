package yields

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("country not found")

// NotFoundError is returned when a country is not a key of the table.
type NotFoundError struct {
	Country string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no yield data for country %q", e.Country)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
