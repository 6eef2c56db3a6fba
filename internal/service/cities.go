package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"hearth/internal/domain"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/sentinel"
	"hearth/pkg/requestcontext"
)

// CreateCity registers a city inside an existing country. The country check
// and the name uniqueness check run in the same transaction as the insert.
func (s *Service) CreateCity(ctx context.Context, name, countryCode string) (*domain.City, error) {
	city, err := domain.NewCity(uuid.NewString(), name, countryCode, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	err = s.store.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetCountry(ctx, city.CountryCode); err != nil {
			return err
		}
		taken, err := s.cityNameTaken(ctx, city.Name, city.CountryCode, "")
		if err != nil {
			return err
		}
		if taken {
			return dErrors.New(dErrors.CodeConflict, "city name is already registered in this country")
		}
		if err := s.store.Save(ctx, city); err != nil {
			return saveError(domain.KindCity, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.created(ctx, domain.KindCity, city.ID)
	return city, nil
}

func (s *Service) GetCity(ctx context.Context, id string) (*domain.City, error) {
	record, err := s.store.Get(ctx, domain.KindCity, id)
	if err != nil {
		return nil, lookupError(domain.KindCity, err)
	}
	return record.(*domain.City), nil
}

func (s *Service) ListCities(ctx context.Context) ([]*domain.City, error) {
	records, err := s.store.GetAll(ctx, domain.KindCity)
	if err != nil {
		return nil, lookupError(domain.KindCity, err)
	}
	cities := make([]*domain.City, 0, len(records))
	for _, record := range records {
		cities = append(cities, record.(*domain.City))
	}
	return cities, nil
}

func (s *Service) UpdateCity(ctx context.Context, id, name, countryCode string) (*domain.City, error) {
	var updated *domain.City
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.GetCity(ctx, id)
		if err != nil {
			return err
		}
		next, err := domain.NewCity(current.ID, name, countryCode, current.CreatedAt)
		if err != nil {
			return err
		}
		if _, err := s.GetCountry(ctx, next.CountryCode); err != nil {
			return err
		}
		taken, err := s.cityNameTaken(ctx, next.Name, next.CountryCode, current.ID)
		if err != nil {
			return err
		}
		if taken {
			return dErrors.New(dErrors.CodeConflict, "city name is already registered in this country")
		}
		record, err := s.store.Update(ctx, next)
		if err != nil {
			return saveError(domain.KindCity, err)
		}
		updated = record.(*domain.City)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.updated(ctx, domain.KindCity, id)
	return updated, nil
}

// DeleteCity removes a city unless places still reference it.
func (s *Service) DeleteCity(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		record, err := s.store.Get(ctx, domain.KindCity, id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return lookupError(domain.KindCity, err)
		}
		places, err := s.ListPlaces(ctx)
		if err != nil {
			return err
		}
		for _, place := range places {
			if place.CityID == id {
				return dErrors.New(dErrors.CodeConflict, "city still has places")
			}
		}
		if removed, err = s.store.Delete(ctx, record); err != nil {
			return deleteError(domain.KindCity, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.deleted(ctx, domain.KindCity, id)
	}
	return removed, nil
}

func (s *Service) cityNameTaken(ctx context.Context, name, countryCode, excludeID string) (bool, error) {
	cities, err := s.ListCities(ctx)
	if err != nil {
		return false, err
	}
	for _, city := range cities {
		if city.ID == excludeID || city.CountryCode != countryCode {
			continue
		}
		if strings.EqualFold(city.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
