package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hearth/internal/domain"
	"hearth/internal/storage"
	"hearth/pkg/requestcontext"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(opts ...Option) (*Service, context.Context) {
	svc := New(storage.NewInMemoryStore(), opts...)
	ctx := requestcontext.WithTime(context.Background(), testTime)
	return svc, ctx
}

func asUser(ctx context.Context, userID string) context.Context {
	return requestcontext.WithUserID(ctx, userID)
}

func asAdmin(ctx context.Context, userID string) context.Context {
	return requestcontext.WithAdmin(requestcontext.WithUserID(ctx, userID), true)
}

func seedUser(t *testing.T, svc *Service, ctx context.Context, email string) *domain.User {
	t.Helper()
	user, err := svc.CreateUser(ctx, CreateUserParams{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "correct horse",
	})
	require.NoError(t, err)
	return user
}

func seedCity(t *testing.T, svc *Service, ctx context.Context) *domain.City {
	t.Helper()
	_, err := svc.CreateCountry(ctx, "NL", "Netherlands")
	require.NoError(t, err)
	city, err := svc.CreateCity(ctx, "Amsterdam", "NL")
	require.NoError(t, err)
	return city
}

func seedPlace(t *testing.T, svc *Service, ctx context.Context, hostID, cityID string) *domain.Place {
	t.Helper()
	place, err := svc.CreatePlace(ctx, hostID, PlaceParams{
		Name:          "Canal loft",
		Description:   "Bright loft by the water",
		CityID:        cityID,
		PricePerNight: 120,
		Latitude:      52.37,
		Longitude:     4.90,
	})
	require.NoError(t, err)
	return place
}
