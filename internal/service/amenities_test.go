package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "hearth/pkg/domain-errors"
)

func TestAmenityNameUniquenessConfigurable(t *testing.T) {
	t.Run("enforced by default", func(t *testing.T) {
		svc, ctx := newTestService()

		_, err := svc.CreateAmenity(ctx, "Wifi")
		require.NoError(t, err)

		_, err = svc.CreateAmenity(ctx, "wifi")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("disabled by rules", func(t *testing.T) {
		svc, ctx := newTestService(WithRules(Rules{AmenityNameUnique: false, MinPasswordLen: 8}))

		_, err := svc.CreateAmenity(ctx, "Wifi")
		require.NoError(t, err)

		_, err = svc.CreateAmenity(ctx, "wifi")
		assert.NoError(t, err)
	})
}

func TestUpdateAmenityKeepsOwnName(t *testing.T) {
	svc, ctx := newTestService()

	amenity, err := svc.CreateAmenity(ctx, "Wifi")
	require.NoError(t, err)

	// Renaming to its own name must not trip the uniqueness check.
	updated, err := svc.UpdateAmenity(ctx, amenity.ID, "Wifi")
	require.NoError(t, err)
	assert.Equal(t, "Wifi", updated.Name)
}

func TestDeleteAmenityAbsentReportsFalse(t *testing.T) {
	svc, ctx := newTestService()

	removed, err := svc.DeleteAmenity(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, removed)
}
