package domain

import (
	"strings"
	"time"

	dErrors "hearth/pkg/domain-errors"
)

// Country is identified by its two-letter code rather than a generated ID.
// The code is immutable once created.
type Country struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCountry validates invariants and builds a country record.
func NewCountry(code, name string, now time.Time) (*Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !validCountryCode(code) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "country code must be two letters")
	}
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "country name is required")
	}
	return &Country{
		Code:      code,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func validCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (c *Country) RecordID() string { return c.Code }
func (c *Country) RecordKind() Kind { return KindCountry }
func (c *Country) Touch(now time.Time) { c.UpdatedAt = now }

func (c *Country) Clone() Record {
	clone := *c
	return &clone
}
