// Package storage defines the repository port every backend satisfies and
// the two backends behind it: an in-process store and a PostgreSQL store.
//
// Backends return pkg/platform/sentinel errors; they never invent their own
// taxonomy. Services are the only callers and translate sentinels into coded
// domain errors.
package storage

import (
	"context"

	"hearth/internal/domain"
)

// Store is the storage port. Both backends give identical behavioral
// guarantees; callers must not depend on anything beyond this contract.
//
// Ordering of GetAll results is unspecified. Get returns
// sentinel.ErrNotFound for a missing id, never a nil record with nil error.
// Save fails with sentinel.ErrConflict when the id is already present for
// its kind. Update refreshes the record's UpdatedAt and fails with
// sentinel.ErrNotFound when the id is absent. Delete reports whether a
// record was actually removed; deleting an absent record is (false, nil),
// not an error.
//
// RunInTx runs fn atomically with respect to other RunInTx sections: the
// in-memory backend serializes them, the postgres backend opens a
// transaction that every store call inside fn joins. Services run their
// check-then-write sequences (uniqueness scans, referential lookups followed
// by a save) inside RunInTx so concurrent requests cannot both pass a check
// and both write.
type Store interface {
	GetAll(ctx context.Context, kind domain.Kind) ([]domain.Record, error)
	Get(ctx context.Context, kind domain.Kind, id string) (domain.Record, error)
	Save(ctx context.Context, record domain.Record) error
	Update(ctx context.Context, record domain.Record) (domain.Record, error)
	Delete(ctx context.Context, record domain.Record) (bool, error)
	Reload(ctx context.Context) error
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
