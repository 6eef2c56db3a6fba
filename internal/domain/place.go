package domain

import (
	"slices"
	"strings"
	"time"

	dErrors "hearth/pkg/domain-errors"
)

// Place is a listing owned by a host user and located in a city. Amenities
// are referenced by ID (many-to-many); the postgres backend materializes the
// association as a join table.
type Place struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	HostID        string    `json:"host_id"`
	CityID        string    `json:"city_id"`
	PricePerNight float64   `json:"price_per_night"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	AmenityIDs    []string  `json:"amenity_ids"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewPlace validates invariants and builds a place record. Referential
// checks (host, city, amenities exist) belong to the service layer.
func NewPlace(id, name, hostID, cityID string, price, lat, lng float64, amenityIDs []string, now time.Time) (*Place, error) {
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "place name is required")
	}
	if hostID == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "host_id is required")
	}
	if cityID == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "city_id is required")
	}
	if price < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "price_per_night must not be negative")
	}
	if lat < -90 || lat > 90 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "longitude must be between -180 and 180")
	}
	return &Place{
		ID:            id,
		Name:          strings.TrimSpace(name),
		HostID:        hostID,
		CityID:        cityID,
		PricePerNight: price,
		Latitude:      lat,
		Longitude:     lng,
		AmenityIDs:    slices.Clone(amenityIDs),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (p *Place) RecordID() string { return p.ID }
func (p *Place) RecordKind() Kind { return KindPlace }
func (p *Place) Touch(now time.Time) { p.UpdatedAt = now }

func (p *Place) Clone() Record {
	clone := *p
	clone.AmenityIDs = slices.Clone(p.AmenityIDs)
	return &clone
}
