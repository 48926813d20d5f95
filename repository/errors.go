package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Callers map it to 404; every other error propagates as-is.
var ErrNotFound = errors.New("record not found")
