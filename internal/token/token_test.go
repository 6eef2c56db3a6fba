package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "hearth/pkg/domain-errors"
)

func TestIssueAndValidate(t *testing.T) {
	mgr := NewManager("test-signing-key", time.Hour)

	signed, err := mgr.Issue(Claims{UserID: "user-1", Email: "a@example.com", IsAdmin: true}, time.Now())
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	mgr := NewManager("test-signing-key", time.Minute)

	signed, err := mgr.Issue(Claims{UserID: "user-1"}, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = mgr.ValidateToken(signed)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateRejectsWrongKey(t *testing.T) {
	mgr := NewManager("key-one", time.Hour)
	other := NewManager("key-two", time.Hour)

	signed, err := mgr.Issue(Claims{UserID: "user-1"}, time.Now())
	require.NoError(t, err)

	_, err = other.ValidateToken(signed)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateRejectsGarbage(t *testing.T) {
	mgr := NewManager("test-signing-key", time.Hour)
	_, err := mgr.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
