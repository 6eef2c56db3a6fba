package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "hearth/pkg/domain-errors"
)

func TestCreateCityRequiresCountry(t *testing.T) {
	svc, ctx := newTestService()

	_, err := svc.CreateCity(ctx, "Atlantis", "XX")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestCreateCityNameUniquePerCountry(t *testing.T) {
	svc, ctx := newTestService()
	_, err := svc.CreateCountry(ctx, "NL", "Netherlands")
	require.NoError(t, err)
	_, err = svc.CreateCountry(ctx, "BE", "Belgium")
	require.NoError(t, err)

	_, err = svc.CreateCity(ctx, "Haarlem", "NL")
	require.NoError(t, err)

	_, err = svc.CreateCity(ctx, "haarlem", "NL")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	// Same name under a different country is fine.
	_, err = svc.CreateCity(ctx, "Haarlem", "BE")
	assert.NoError(t, err)
}

func TestUpdateCityChecksCountryAndName(t *testing.T) {
	svc, ctx := newTestService()
	city := seedCity(t, svc, ctx)

	_, err := svc.UpdateCity(ctx, city.ID, "Amsterdam", "XX")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	updated, err := svc.UpdateCity(ctx, city.ID, "Rotterdam", "NL")
	require.NoError(t, err)
	assert.Equal(t, "Rotterdam", updated.Name)
}

func TestDeleteCountryProtectedWhileCitiesExist(t *testing.T) {
	svc, ctx := newTestService()
	city := seedCity(t, svc, ctx)

	_, err := svc.DeleteCountry(ctx, "NL")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	removed, err := svc.DeleteCity(ctx, city.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = svc.DeleteCountry(ctx, "NL")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestDeleteCityAbsentReportsFalse(t *testing.T) {
	svc, ctx := newTestService()

	removed, err := svc.DeleteCity(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCountryCodeImmutableIdentity(t *testing.T) {
	svc, ctx := newTestService()
	_, err := svc.CreateCountry(ctx, "nl", "Netherlands")
	require.NoError(t, err)

	country, err := svc.GetCountry(ctx, "NL")
	require.NoError(t, err)
	assert.Equal(t, "NL", country.Code)

	_, err = svc.CreateCountry(ctx, "NL", "Nederland")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}
