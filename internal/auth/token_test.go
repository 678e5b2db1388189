package auth

import (
	"errors"
	"testing"
	"time"

	"jobboard_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)
	want := Identity{UserID: uuid.NewString(), Role: models.UserRoleEmployer}

	token, err := svc.GenerateToken(want)
	require.NoError(t, err)

	got, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)
	id := uuid.NewString()

	wrongKey, err := NewTokenService("other", time.Minute).GenerateToken(Identity{UserID: id, Role: models.UserRoleAdmin})
	require.NoError(t, err)

	expired, err := NewTokenService("secret", time.Nanosecond).GenerateToken(Identity{UserID: id, Role: models.UserRoleAdmin})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	badRole, err := svc.GenerateToken(Identity{UserID: id, Role: "superuser"})
	require.NoError(t, err)

	badID, err := svc.GenerateToken(Identity{UserID: "42", Role: models.UserRoleAdmin})
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: id, Role: models.UserRoleAdmin})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":   "not-a-token",
		"wrong key": wrongKey,
		"expired":   expired,
		"bad role":  badRole,
		"bad id":    badID,
		"alg none":  unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

func TestIdentityPermissions(t *testing.T) {
	owner := Identity{UserID: uuid.NewString(), Role: models.UserRoleEmployer}
	other := Identity{UserID: uuid.NewString(), Role: models.UserRoleEmployer}
	admin := Identity{UserID: uuid.NewString(), Role: models.UserRoleAdmin}
	job := &models.JobPosting{PostedBy: owner.UserID}

	assert.True(t, owner.CanManageJob(job))
	assert.False(t, other.CanManageJob(job))
	assert.True(t, admin.CanManageJob(job))
	assert.True(t, admin.HasRole(models.UserRoleEmployer, models.UserRoleAdmin))
	assert.False(t, other.HasRole(models.UserRoleAdmin))
	assert.Equal(t, "", UserIDOf(nil))
}
