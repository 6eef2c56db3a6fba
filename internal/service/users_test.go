package service

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	dErrors "hearth/pkg/domain-errors"
)

func TestCreateUserNormalizesEmailAndHashesPassword(t *testing.T) {
	svc, ctx := newTestService()

	user, err := svc.CreateUser(ctx, CreateUserParams{
		Email:     "  Ada@Example.COM ",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "correct horse")
	assert.Equal(t, testTime, user.CreatedAt)
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	svc, ctx := newTestService()

	_, err := svc.CreateUser(ctx, CreateUserParams{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "short",
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	svc, ctx := newTestService()
	seedUser(t, svc, ctx, "ada@example.com")

	_, err := svc.CreateUser(ctx, CreateUserParams{
		Email:     "ADA@example.com",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "correct horse",
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestCreateUserConcurrentDuplicateEmail(t *testing.T) {
	svc, ctx := newTestService()

	var successes atomic.Int32
	var group errgroup.Group
	for range 8 {
		group.Go(func() error {
			_, err := svc.CreateUser(ctx, CreateUserParams{
				Email:     "race@example.com",
				FirstName: "Ada",
				LastName:  "Lovelace",
				Password:  "correct horse",
			})
			if err == nil {
				successes.Add(1)
				return nil
			}
			if dErrors.HasCode(err, dErrors.CodeConflict) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, group.Wait())
	assert.Equal(t, int32(1), successes.Load())

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuthenticate(t *testing.T) {
	svc, ctx := newTestService()
	created := seedUser(t, svc, ctx, "ada@example.com")

	user, err := svc.Authenticate(ctx, "Ada@Example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Authenticate(ctx, "ada@example.com", "wrong password")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct horse")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestUpdateUserOwnership(t *testing.T) {
	svc, ctx := newTestService()
	owner := seedUser(t, svc, ctx, "owner@example.com")
	other := seedUser(t, svc, ctx, "other@example.com")

	_, err := svc.UpdateUser(asUser(ctx, other.ID), owner.ID, UpdateUserParams{
		Email:     "owner@example.com",
		FirstName: "Hijacked",
		LastName:  "Name",
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))

	updated, err := svc.UpdateUser(asUser(ctx, owner.ID), owner.ID, UpdateUserParams{
		Email:     "owner@example.com",
		FirstName: "Augusta",
		LastName:  "King",
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Equal(t, owner.CreatedAt, updated.CreatedAt)

	byAdmin, err := svc.UpdateUser(asAdmin(ctx, other.ID), owner.ID, UpdateUserParams{
		Email:     "renamed@example.com",
		FirstName: "Augusta",
		LastName:  "King",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed@example.com", byAdmin.Email)
}

func TestUpdateUserEmailUniqueness(t *testing.T) {
	svc, ctx := newTestService()
	owner := seedUser(t, svc, ctx, "owner@example.com")
	seedUser(t, svc, ctx, "taken@example.com")

	_, err := svc.UpdateUser(asUser(ctx, owner.ID), owner.ID, UpdateUserParams{
		Email:     "taken@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestDeleteUser(t *testing.T) {
	svc, ctx := newTestService()
	admin := asAdmin(ctx, "root")

	user := seedUser(t, svc, ctx, "gone@example.com")
	removed, err := svc.DeleteUser(admin, user.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.DeleteUser(admin, user.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteUserProtectedWhileHosting(t *testing.T) {
	svc, ctx := newTestService()
	host := seedUser(t, svc, ctx, "host@example.com")
	city := seedCity(t, svc, ctx)
	seedPlace(t, svc, ctx, host.ID, city.ID)

	_, err := svc.DeleteUser(asAdmin(ctx, "root"), host.ID)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}
