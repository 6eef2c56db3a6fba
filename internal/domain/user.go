package domain

import (
	"net/mail"
	"strings"
	"time"

	dErrors "hearth/pkg/domain-errors"
)

// User is a marketplace account. Hosts own places; any user can author
// reviews on places they do not host.
//
// Invariants:
//   - Email is non-empty, syntactically valid, stored lowercased, and unique
//     across all users (uniqueness enforced by the service layer / database)
//   - FirstName and LastName are non-empty
//   - PasswordHash is an opaque one-way hash, never the cleartext password
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases and trims an address so comparisons and
// uniqueness checks agree with the stored form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser validates invariants and builds a user record.
// The password must already be hashed by the caller.
func NewUser(id, email, firstName, lastName, passwordHash string, now time.Time) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "email is not valid")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "first_name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "last_name is required")
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password hash is required")
	}
	return &User{
		ID:           id,
		Email:        email,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *User) RecordID() string { return u.ID }
func (u *User) RecordKind() Kind { return KindUser }
func (u *User) Touch(now time.Time) { u.UpdatedAt = now }

func (u *User) Clone() Record {
	clone := *u
	return &clone
}
