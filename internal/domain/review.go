package domain

import (
	"strings"
	"time"

	dErrors "hearth/pkg/domain-errors"
)

// RatingMin and RatingMax bound review ratings, inclusive.
const (
	RatingMin = 1.0
	RatingMax = 5.0
)

// Review is authored by a user about a place. The author must differ from
// the place's host; only the author may edit it (service-layer rules).
type Review struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	Comment   string    `json:"comment"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReview validates invariants and builds a review record.
func NewReview(id, placeID, userID, comment string, rating float64, now time.Time) (*Review, error) {
	if placeID == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "place_id is required")
	}
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user_id is required")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "comment is required")
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	return &Review{
		ID:        id,
		PlaceID:   placeID,
		UserID:    userID,
		Comment:   strings.TrimSpace(comment),
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateRating rejects ratings outside [RatingMin, RatingMax].
func ValidateRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return dErrors.New(dErrors.CodeInvariantViolation, "rating must be between 1 and 5")
	}
	return nil
}

func (r *Review) RecordID() string { return r.ID }
func (r *Review) RecordKind() Kind { return KindReview }
func (r *Review) Touch(now time.Time) { r.UpdatedAt = now }

func (r *Review) Clone() Record {
	clone := *r
	return &clone
}
