// Package common defines shared sentinel errors used across the gatelog
// core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound       = errors.New("not found")
	ErrInvalidPayload = errors.New("invalid scan payload")

	// Reconciliation errors. Neither mutates the record store.
	ErrDuplicateEntry = errors.New("entry already registered")
	ErrMissingEntry   = errors.New("no prior entry")

	// Export errors.
	ErrEmptyExport = errors.New("nothing to export")

	// Store-level failure (read, write or serialization). The underlying
	// cause is wrapped, so errors.Is(err, ErrPersistence) still matches.
	ErrPersistence = errors.New("persistence error")

	// Roster maintenance errors.
	ErrDuplicatePerson = errors.New("person already in roster")
)
