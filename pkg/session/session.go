package session

import (
	"errors"
	"time"

	"github.com/neobank/payflow/pkg/token"
)

var (
	ErrSessionExpired     = errors.New("session has expired")
	ErrSessionInvalidated = errors.New("session has been invalidated")
)

// Session is the authenticated identity a payment workflow runs under.
// It is built once from a verified bearer token at request entry and passed
// explicitly to every collaborator; it is never read from ambient state.
type Session struct {
	ID          string
	UserID      string
	Token       string
	IssuedAt    time.Time
	ExpiresAt   time.Time
	invalidated bool
}

// FromPayload builds a session from a verified token payload and the raw
// bearer token it was decoded from.
func FromPayload(payload *token.Payload, bearerToken string) *Session {
	return &Session{
		ID:        payload.RegisteredClaims.ID,
		UserID:    payload.UserID,
		Token:     bearerToken,
		IssuedAt:  payload.IssuedAt.Time,
		ExpiresAt: payload.ExpiresAt.Time,
	}
}

// Valid reports whether the session can still be used for backend calls.
func (s *Session) Valid() error {
	if s.invalidated {
		return ErrSessionInvalidated
	}
	if time.Now().After(s.ExpiresAt) {
		return ErrSessionExpired
	}
	return nil
}

// Invalidate marks the session unusable, e.g. on logout.
func (s *Session) Invalidate() {
	s.invalidated = true
}
