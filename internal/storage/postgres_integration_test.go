//go:build integration

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"hearth/internal/domain"
	"hearth/pkg/platform/sentinel"
	"hearth/pkg/requestcontext"
	"hearth/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.Postgres
	store *PostgresStore
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	ctx := context.Background()
	pg, err := containers.StartPostgres(ctx)
	s.Require().NoError(err)
	s.pg = pg

	store, err := OpenPostgres(ctx, pg.DSN)
	s.Require().NoError(err)
	s.store = store
}

func (s *PostgresStoreSuite) TearDownSuite() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
	if s.pg != nil {
		s.Require().NoError(s.pg.Terminate(context.Background()))
	}
}

func (s *PostgresStoreSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), fixedTime)
	_, err := s.store.DB().ExecContext(s.ctx, `
		TRUNCATE audit_events, reviews, place_amenities, places,
		         amenities, cities, countries, users CASCADE`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) seedUser(id, email string) *domain.User {
	user, err := domain.NewUser(id, email, "Ada", "Lovelace", "hashed", fixedTime)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(s.ctx, user))
	return user
}

func (s *PostgresStoreSuite) seedGeo() *domain.City {
	country, err := domain.NewCountry("NL", "Netherlands", fixedTime)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(s.ctx, country))

	city, err := domain.NewCity("c1", "Amsterdam", "NL", fixedTime)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(s.ctx, city))
	return city
}

func (s *PostgresStoreSuite) TestUserRoundtrip() {
	s.seedUser("u1", "ada@example.com")

	record, err := s.store.Get(s.ctx, domain.KindUser, "u1")
	s.Require().NoError(err)
	user := record.(*domain.User)
	s.Equal("ada@example.com", user.Email)
	s.Equal("Ada", user.FirstName)
	s.WithinDuration(fixedTime, user.CreatedAt, time.Second)
}

func (s *PostgresStoreSuite) TestUniqueEmailIndexConflicts() {
	s.seedUser("u1", "ada@example.com")

	dup, err := domain.NewUser("u2", "ada@example.com", "Other", "Person", "hashed", fixedTime)
	s.Require().NoError(err)
	s.ErrorIs(s.store.Save(s.ctx, dup), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestForeignKeySurfacesOnDanglingReference() {
	city, err := domain.NewCity("c1", "Atlantis", "XX", fixedTime)
	s.Require().NoError(err)
	s.ErrorIs(s.store.Save(s.ctx, city), sentinel.ErrForeignKey)
}

func (s *PostgresStoreSuite) TestPlaceAmenitiesRoundtrip() {
	host := s.seedUser("u1", "host@example.com")
	city := s.seedGeo()

	wifi, err := domain.NewAmenity("a1", "Wifi", fixedTime)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(s.ctx, wifi))

	place, err := domain.NewPlace("p1", "Canal loft", host.ID, city.ID,
		120, 52.37, 4.90, []string{"a1"}, fixedTime)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(s.ctx, place))

	record, err := s.store.Get(s.ctx, domain.KindPlace, "p1")
	s.Require().NoError(err)
	s.Equal([]string{"a1"}, record.(*domain.Place).AmenityIDs)
}

func (s *PostgresStoreSuite) TestUpdateAdvancesUpdatedAtOnly() {
	s.seedUser("u1", "ada@example.com")

	later := fixedTime.Add(2 * time.Hour)
	ctx := requestcontext.WithTime(context.Background(), later)
	next, err := domain.NewUser("u1", "renamed@example.com", "Ada", "Lovelace", "hashed", fixedTime)
	s.Require().NoError(err)

	record, err := s.store.Update(ctx, next)
	s.Require().NoError(err)
	updated := record.(*domain.User)
	s.Equal("renamed@example.com", updated.Email)
	s.WithinDuration(later, updated.UpdatedAt, time.Second)
	s.WithinDuration(fixedTime, updated.CreatedAt, time.Second)
}

func (s *PostgresStoreSuite) TestUpdateMissingReportsNotFound() {
	ghost, err := domain.NewUser("missing", "ghost@example.com", "No", "One", "hashed", fixedTime)
	s.Require().NoError(err)
	_, err = s.store.Update(s.ctx, ghost)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDeleteReportsPresence() {
	user := s.seedUser("u1", "ada@example.com")

	removed, err := s.store.Delete(s.ctx, user)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.store.Delete(s.ctx, user)
	s.Require().NoError(err)
	s.False(removed)
}

func (s *PostgresStoreSuite) TestRunInTxRollsBackOnError() {
	sentinelErr := errors.New("abort")
	err := s.store.RunInTx(s.ctx, func(ctx context.Context) error {
		user, err := domain.NewUser("u1", "ada@example.com", "Ada", "Lovelace", "hashed", fixedTime)
		if err != nil {
			return err
		}
		if err := s.store.Save(ctx, user); err != nil {
			return err
		}
		return sentinelErr
	})
	s.ErrorIs(err, sentinelErr)

	_, err = s.store.Get(s.ctx, domain.KindUser, "u1")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestReloadPingsTheDatabase() {
	s.NoError(s.store.Reload(s.ctx))
}
