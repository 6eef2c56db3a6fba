package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"hearth/internal/domain"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/sentinel"
	"hearth/pkg/requestcontext"
)

// CreateReview records the authenticated caller's review of a place. Hosts
// cannot review their own listings.
func (s *Service) CreateReview(ctx context.Context, placeID string, rating float64, comment string) (*domain.Review, error) {
	authorID := requestcontext.UserID(ctx)
	if authorID == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	review, err := domain.NewReview(uuid.NewString(), placeID, authorID, comment, rating,
		requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	err = s.store.RunInTx(ctx, func(ctx context.Context) error {
		place, err := s.GetPlace(ctx, placeID)
		if err != nil {
			return err
		}
		if place.HostID == authorID {
			return dErrors.New(dErrors.CodeValidation, "hosts cannot review their own place")
		}
		if _, err := s.store.Get(ctx, domain.KindUser, authorID); err != nil {
			return lookupError(domain.KindUser, err)
		}
		if err := s.store.Save(ctx, review); err != nil {
			return saveError(domain.KindReview, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.created(ctx, domain.KindReview, review.ID)
	return review, nil
}

func (s *Service) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	record, err := s.store.Get(ctx, domain.KindReview, id)
	if err != nil {
		return nil, lookupError(domain.KindReview, err)
	}
	return record.(*domain.Review), nil
}

// ListReviewsForPlace returns the reviews of one place.
func (s *Service) ListReviewsForPlace(ctx context.Context, placeID string) ([]*domain.Review, error) {
	reviews, err := s.listAllReviews(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.PlaceID == placeID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

// ListReviewsByUser returns the reviews a user has authored.
func (s *Service) ListReviewsByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	reviews, err := s.listAllReviews(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.UserID == userID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

// UpdateReview replaces the rating and comment. Only the author or an admin
// may call it; the place and author bindings are immutable.
func (s *Service) UpdateReview(ctx context.Context, id string, rating float64, comment string) (*domain.Review, error) {
	var updated *domain.Review
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.GetReview(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorizeOwner(ctx, current.UserID); err != nil {
			return err
		}
		next, err := domain.NewReview(current.ID, current.PlaceID, current.UserID,
			comment, rating, current.CreatedAt)
		if err != nil {
			return err
		}
		record, err := s.store.Update(ctx, next)
		if err != nil {
			return saveError(domain.KindReview, err)
		}
		updated = record.(*domain.Review)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.updated(ctx, domain.KindReview, id)
	return updated, nil
}

// DeleteReview removes a review. Only the author or an admin may call it.
func (s *Service) DeleteReview(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		record, err := s.store.Get(ctx, domain.KindReview, id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return lookupError(domain.KindReview, err)
		}
		review := record.(*domain.Review)
		if err := s.authorizeOwner(ctx, review.UserID); err != nil {
			return err
		}
		if removed, err = s.store.Delete(ctx, record); err != nil {
			return deleteError(domain.KindReview, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.deleted(ctx, domain.KindReview, id)
	}
	return removed, nil
}

func (s *Service) listAllReviews(ctx context.Context) ([]*domain.Review, error) {
	records, err := s.store.GetAll(ctx, domain.KindReview)
	if err != nil {
		return nil, lookupError(domain.KindReview, err)
	}
	reviews := make([]*domain.Review, 0, len(records))
	for _, record := range records {
		reviews = append(reviews, record.(*domain.Review))
	}
	return reviews, nil
}
