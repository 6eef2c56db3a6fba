package service

import (
	"errors"
	"fmt"

	"hearth/internal/domain"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/sentinel"
)

// The storage port reports failures as infrastructure sentinels. The rule
// layer owns their meaning: a foreign key violation during a save means a
// dangling reference, during a delete it means the record is still in use.

func lookupError(kind domain.Kind, err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("%s not found", kind))
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "storage backend unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("failed to load %s", kind))
	}
}

func saveError(kind domain.Kind, err error) error {
	switch {
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("%s already exists", kind))
	case errors.Is(err, sentinel.ErrForeignKey):
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("%s references a record that does not exist", kind))
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("%s not found", kind))
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "storage backend unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("failed to persist %s", kind))
	}
}

func deleteError(kind domain.Kind, err error) error {
	switch {
	case errors.Is(err, sentinel.ErrForeignKey):
		return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("%s is still referenced by other records", kind))
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "storage backend unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("failed to delete %s", kind))
	}
}
