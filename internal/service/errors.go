package service

import "errors"

var (
	// ErrInvalid marks caller errors (bad input, unknown locale).
	ErrInvalid = errors.New("invalid input")
	// ErrNotFound marks lookups for entities that do not exist.
	ErrNotFound = errors.New("not found")
	// ErrTranslate marks translation attempts denied by the guard.
	ErrTranslate = errors.New("translation denied")
)
