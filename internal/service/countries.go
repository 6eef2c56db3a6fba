package service

import (
	"context"
	"errors"
	"strings"

	"hearth/internal/domain"
	dErrors "hearth/pkg/domain-errors"
	"hearth/pkg/platform/sentinel"
	"hearth/pkg/requestcontext"
)

// CreateCountry registers a country under its ISO 3166-1 alpha-2 code. The
// code is the record identity, so a duplicate insert surfaces as a conflict
// from either backend without a separate scan.
func (s *Service) CreateCountry(ctx context.Context, code, name string) (*domain.Country, error) {
	country, err := domain.NewCountry(code, name, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, country); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "country code is already registered")
		}
		return nil, saveError(domain.KindCountry, err)
	}
	s.created(ctx, domain.KindCountry, country.Code)
	return country, nil
}

func (s *Service) GetCountry(ctx context.Context, code string) (*domain.Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	record, err := s.store.Get(ctx, domain.KindCountry, code)
	if err != nil {
		return nil, lookupError(domain.KindCountry, err)
	}
	return record.(*domain.Country), nil
}

func (s *Service) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	records, err := s.store.GetAll(ctx, domain.KindCountry)
	if err != nil {
		return nil, lookupError(domain.KindCountry, err)
	}
	countries := make([]*domain.Country, 0, len(records))
	for _, record := range records {
		countries = append(countries, record.(*domain.Country))
	}
	return countries, nil
}

// UpdateCountry renames a country. The code is immutable; it is the identity
// every city reference hangs off.
func (s *Service) UpdateCountry(ctx context.Context, code, name string) (*domain.Country, error) {
	var updated *domain.Country
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.GetCountry(ctx, code)
		if err != nil {
			return err
		}
		next, err := domain.NewCountry(current.Code, name, current.CreatedAt)
		if err != nil {
			return err
		}
		record, err := s.store.Update(ctx, next)
		if err != nil {
			return saveError(domain.KindCountry, err)
		}
		updated = record.(*domain.Country)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.updated(ctx, domain.KindCountry, updated.Code)
	return updated, nil
}

// DeleteCountry removes a country unless cities still reference it.
func (s *Service) DeleteCountry(ctx context.Context, code string) (bool, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	var removed bool
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		record, err := s.store.Get(ctx, domain.KindCountry, code)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return lookupError(domain.KindCountry, err)
		}
		cities, err := s.ListCities(ctx)
		if err != nil {
			return err
		}
		for _, city := range cities {
			if city.CountryCode == code {
				return dErrors.New(dErrors.CodeConflict, "country still has cities")
			}
		}
		if removed, err = s.store.Delete(ctx, record); err != nil {
			return deleteError(domain.KindCountry, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.deleted(ctx, domain.KindCountry, code)
	}
	return removed, nil
}
