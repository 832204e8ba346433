package services

import (
	"testing"
	"time"

	"volunteerhub/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSignToken_RoundTrip(t *testing.T) {
	const secret = "test-secret"
	uid := bson.NewObjectID()

	tokenStr, err := SignToken(secret, uid)
	require.NoError(t, err)

	var claims middleware.TokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, uid.Hex(), claims.ID)

	// 7-day validity
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TokenTTL, ttl)
}

func TestSignToken_WrongSecretRejected(t *testing.T) {
	tokenStr, err := SignToken("right-secret", bson.NewObjectID())
	require.NoError(t, err)

	var claims middleware.TokenClaims
	_, err = jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return []byte("wrong-secret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	assert.Error(t, err)
}

func TestSignToken_ExpiredTokenRejected(t *testing.T) {
	const secret = "test-secret"

	claims := middleware.TokenClaims{
		ID: bson.NewObjectID().Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	var parsed middleware.TokenClaims
	_, err = jwt.ParseWithClaims(tokenStr, &parsed, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
