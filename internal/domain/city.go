package domain

import (
	"strings"
	"time"

	dErrors "hearth/pkg/domain-errors"
)

// City belongs to exactly one country, referenced by country code. The
// service layer verifies the country exists before any write.
type City struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CountryCode string    `json:"country_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCity validates invariants and builds a city record.
func NewCity(id, name, countryCode string, now time.Time) (*City, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "city name is required")
	}
	if !validCountryCode(countryCode) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "country code must be two letters")
	}
	return &City{
		ID:          id,
		Name:        strings.TrimSpace(name),
		CountryCode: countryCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (c *City) RecordID() string { return c.ID }
func (c *City) RecordKind() Kind { return KindCity }
func (c *City) Touch(now time.Time) { c.UpdatedAt = now }

func (c *City) Clone() Record {
	clone := *c
	return &clone
}
