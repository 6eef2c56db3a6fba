package domain

import (
	"strings"
	"time"

	dErrors "hearth/pkg/domain-errors"
)

// Amenity is a feature places can offer (wifi, parking, ...). Name
// uniqueness is a configurable service-layer rule, not a record invariant.
type Amenity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAmenity validates invariants and builds an amenity record.
func NewAmenity(id, name string, now time.Time) (*Amenity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "amenity name is required")
	}
	return &Amenity{
		ID:        id,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (a *Amenity) RecordID() string { return a.ID }
func (a *Amenity) RecordKind() Kind { return KindAmenity }
func (a *Amenity) Touch(now time.Time) { a.UpdatedAt = now }

func (a *Amenity) Clone() Record {
	clone := *a
	return &clone
}
