package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/neobank/payflow/pkg/token"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	payload, err := token.NewPayload("user1", time.Minute)
	require.NoError(t, err)

	s := FromPayload(payload, "raw-token")
	require.Equal(t, "user1", s.UserID)
	require.Equal(t, payload.RegisteredClaims.ID, s.ID)
	require.Equal(t, "raw-token", s.Token)
	require.NoError(t, s.Valid())

	s.Invalidate()
	require.ErrorIs(t, s.Valid(), ErrSessionInvalidated)
}

func TestSessionExpiry(t *testing.T) {
	payload, err := token.NewPayload("user1", time.Minute)
	require.NoError(t, err)
	payload.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Second))

	s := FromPayload(payload, "raw-token")
	require.ErrorIs(t, s.Valid(), ErrSessionExpired)
}
