package auth

import (
	"testing"
	"time"

	"shelf/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWT(t, time.Hour)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc := newTestJWT(t, time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	other := newTestJWT(t, time.Hour)
	other.secret = []byte("another-secret")
	token, _, err := other.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWT(t, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWT(t, time.Hour)

	claims := jwt.MapClaims{"uid": uuid.New().String(), "iss": tokenIssuer, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
