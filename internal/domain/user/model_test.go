package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSession_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	future := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})
	past := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	noExp := signedToken(t, jwt.RegisteredClaims{Subject: "u1"})

	assert.False(t, Session{Token: future}.Expired(now))
	assert.True(t, Session{Token: past}.Expired(now))
	assert.False(t, Session{Token: noExp}.Expired(now))
	assert.True(t, Session{Token: "not-a-jwt"}.Expired(now))
	assert.True(t, Session{}.Expired(now))
}

func TestSession_CanManage(t *testing.T) {
	t.Parallel()

	host := Session{UserID: "u1", Token: "t"}
	admin := Session{UserID: "u2", Token: "t", IsAdmin: true}
	other := Session{UserID: "u3", Token: "t"}

	assert.True(t, host.CanManage("u1"))
	assert.True(t, admin.CanManage("u1"))
	assert.False(t, other.CanManage("u1"))
	assert.False(t, Session{}.CanManage(""))
}
