package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"

	"hearth/internal/domain"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/sentinel"
	"hearth/pkg/requestcontext"
)

// CreateAmenity registers an amenity. Name uniqueness is a deployment knob;
// when enabled the check runs in the same transaction as the insert.
func (s *Service) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	amenity, err := domain.NewAmenity(uuid.NewString(), name, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	err = s.store.RunInTx(ctx, func(ctx context.Context) error {
		if s.rules.AmenityNameUnique {
			taken, err := s.amenityNameTaken(ctx, amenity.Name, "")
			if err != nil {
				return err
			}
			if taken {
				return dErrors.New(dErrors.CodeConflict, "amenity name is already registered")
			}
		}
		if err := s.store.Save(ctx, amenity); err != nil {
			return saveError(domain.KindAmenity, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.created(ctx, domain.KindAmenity, amenity.ID)
	return amenity, nil
}

func (s *Service) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	record, err := s.store.Get(ctx, domain.KindAmenity, id)
	if err != nil {
		return nil, lookupError(domain.KindAmenity, err)
	}
	return record.(*domain.Amenity), nil
}

func (s *Service) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	records, err := s.store.GetAll(ctx, domain.KindAmenity)
	if err != nil {
		return nil, lookupError(domain.KindAmenity, err)
	}
	amenities := make([]*domain.Amenity, 0, len(records))
	for _, record := range records {
		amenities = append(amenities, record.(*domain.Amenity))
	}
	return amenities, nil
}

func (s *Service) UpdateAmenity(ctx context.Context, id, name string) (*domain.Amenity, error) {
	var updated *domain.Amenity
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.GetAmenity(ctx, id)
		if err != nil {
			return err
		}
		next, err := domain.NewAmenity(current.ID, name, current.CreatedAt)
		if err != nil {
			return err
		}
		if s.rules.AmenityNameUnique {
			taken, err := s.amenityNameTaken(ctx, next.Name, current.ID)
			if err != nil {
				return err
			}
			if taken {
				return dErrors.New(dErrors.CodeConflict, "amenity name is already registered")
			}
		}
		record, err := s.store.Update(ctx, next)
		if err != nil {
			return saveError(domain.KindAmenity, err)
		}
		updated = record.(*domain.Amenity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.updated(ctx, domain.KindAmenity, id)
	return updated, nil
}

// DeleteAmenity removes an amenity unless places still list it.
func (s *Service) DeleteAmenity(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		record, err := s.store.Get(ctx, domain.KindAmenity, id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return lookupError(domain.KindAmenity, err)
		}
		places, err := s.ListPlaces(ctx)
		if err != nil {
			return err
		}
		for _, place := range places {
			if slices.Contains(place.AmenityIDs, id) {
				return dErrors.New(dErrors.CodeConflict, "amenity is still linked to places")
			}
		}
		if removed, err = s.store.Delete(ctx, record); err != nil {
			return deleteError(domain.KindAmenity, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.deleted(ctx, domain.KindAmenity, id)
	}
	return removed, nil
}

func (s *Service) amenityNameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	amenities, err := s.ListAmenities(ctx)
	if err != nil {
		return false, err
	}
	for _, amenity := range amenities {
		if amenity.ID != excludeID && strings.EqualFold(amenity.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
