package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hearth/internal/domain"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/sentinel"
	"hearth/pkg/requestcontext"
)

type PlaceParams struct {
	Name          string
	Description   string
	CityID        string
	PricePerNight float64
	Latitude      float64
	Longitude     float64
	AmenityIDs    []string
}

// CreatePlace registers a listing owned by hostID. Host, city, and every
// amenity must exist; the checks share a transaction with the insert so a
// concurrent delete of a referenced record cannot slip in between.
func (s *Service) CreatePlace(ctx context.Context, hostID string, params PlaceParams) (*domain.Place, error) {
	place, err := domain.NewPlace(uuid.NewString(), params.Name, hostID, params.CityID,
		params.PricePerNight, params.Latitude, params.Longitude, params.AmenityIDs,
		requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	place.Description = params.Description

	err = s.store.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkPlaceReferences(ctx, place); err != nil {
			return err
		}
		if err := s.store.Save(ctx, place); err != nil {
			return saveError(domain.KindPlace, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.created(ctx, domain.KindPlace, place.ID)
	return place, nil
}

func (s *Service) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	record, err := s.store.Get(ctx, domain.KindPlace, id)
	if err != nil {
		return nil, lookupError(domain.KindPlace, err)
	}
	return record.(*domain.Place), nil
}

func (s *Service) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	records, err := s.store.GetAll(ctx, domain.KindPlace)
	if err != nil {
		return nil, lookupError(domain.KindPlace, err)
	}
	places := make([]*domain.Place, 0, len(records))
	for _, record := range records {
		places = append(places, record.(*domain.Place))
	}
	return places, nil
}

// UpdatePlace replaces listing fields. Only the host or an admin may call
// it. The host itself is immutable; listings do not change owners.
func (s *Service) UpdatePlace(ctx context.Context, id string, params PlaceParams) (*domain.Place, error) {
	var updated *domain.Place
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.GetPlace(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorizeOwner(ctx, current.HostID); err != nil {
			return err
		}
		next, err := domain.NewPlace(current.ID, params.Name, current.HostID, params.CityID,
			params.PricePerNight, params.Latitude, params.Longitude, params.AmenityIDs,
			current.CreatedAt)
		if err != nil {
			return err
		}
		next.Description = params.Description
		if err := s.checkPlaceReferences(ctx, next); err != nil {
			return err
		}
		record, err := s.store.Update(ctx, next)
		if err != nil {
			return saveError(domain.KindPlace, err)
		}
		updated = record.(*domain.Place)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.updated(ctx, domain.KindPlace, id)
	return updated, nil
}

// DeletePlace removes a listing unless reviews still reference it. Only the
// host or an admin may call it.
func (s *Service) DeletePlace(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		record, err := s.store.Get(ctx, domain.KindPlace, id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return lookupError(domain.KindPlace, err)
		}
		place := record.(*domain.Place)
		if err := s.authorizeOwner(ctx, place.HostID); err != nil {
			return err
		}
		reviews, err := s.ListReviewsForPlace(ctx, id)
		if err != nil {
			return err
		}
		if len(reviews) > 0 {
			return dErrors.New(dErrors.CodeConflict, "place still has reviews")
		}
		if removed, err = s.store.Delete(ctx, record); err != nil {
			return deleteError(domain.KindPlace, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.deleted(ctx, domain.KindPlace, id)
	}
	return removed, nil
}

func (s *Service) checkPlaceReferences(ctx context.Context, place *domain.Place) error {
	if _, err := s.store.Get(ctx, domain.KindUser, place.HostID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "host not found")
		}
		return lookupError(domain.KindUser, err)
	}
	if _, err := s.GetCity(ctx, place.CityID); err != nil {
		return err
	}
	for _, amenityID := range place.AmenityIDs {
		if _, err := s.store.Get(ctx, domain.KindAmenity, amenityID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("amenity %s not found", amenityID))
			}
			return lookupError(domain.KindAmenity, err)
		}
	}
	return nil
}
