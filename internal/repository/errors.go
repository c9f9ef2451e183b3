package repository

import "errors"

// ErrNotFound is returned when a requested submission does not exist.
// Marking it processed twice is not an error; only a missing id is.
var ErrNotFound = errors.New("not found")
