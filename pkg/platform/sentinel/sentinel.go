package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about stored records, not validation
// failures:
// - ErrNotFound: record does not exist in the store
// - ErrConflict: a record with the same identity or unique field already exists
// - ErrForeignKey: a referenced record is missing or still referenced
// - ErrUnavailable: the backend itself failed (connection loss etc.)
//
// For validation errors (bad input, missing fields), use pkg/domain-errors
// directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrForeignKey  = errors.New("foreign key violation")
	ErrUnavailable = errors.New("unavailable")
)
