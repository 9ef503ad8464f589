package jwt

import (
	"context"
	"testing"

	"github.com/payflow-pro/payflow-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAndDecodeAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	employeeID := "emp-1"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", "asha@payflow.test", &employeeID, user.RoleHRAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "asha@payflow.test", claims["email"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "hr_admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestAccessTokenWithoutEmployee(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateAccessToken("user-1", "admin@payflow.test", nil, user.RoleSuperAdmin)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
}

func TestParseRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateAccessToken("user-1", "asha@payflow.test", nil, user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsRevoked(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "-2m")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokeTokenSweepsExpiredEntries(t *testing.T) {
	expired := NewJWTService(testSecret, "1h", "-2m")
	svc := NewJWTService(testSecret, "1h", "24h")

	staleToken, _, err := expired.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	liveToken, _, err := svc.GenerateRefreshToken("user-2")
	require.NoError(t, err)

	svc.RevokeToken(staleToken)
	assert.True(t, svc.IsTokenRevoked(staleToken))

	// The stale entry expired long before the live revoke, so it is
	// swept. Signature verification rejects the expired token anyway.
	svc.RevokeToken(liveToken)
	assert.False(t, svc.IsTokenRevoked(staleToken))
	assert.True(t, svc.IsTokenRevoked(liveToken))
}

func TestParseRefreshTokenRejectsOtherSecret(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	other := NewJWTService("another-secret", "1h", "24h")

	token, _, err := other.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}
