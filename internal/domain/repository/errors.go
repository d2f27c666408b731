package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a create hits the unique email
	// constraint; concurrent registrations race at the index and the
	// loser gets this.
	ErrDuplicateEmail = errors.New("email already registered")
)
