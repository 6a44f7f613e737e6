package jwt

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	tk "github.com/neobank/payflow/pkg/token"
)

// JWTMaker is a JSON Web Token maker
type JWTMaker struct {
	secretKey string
}

// CreateToken implements Maker.
func (maker *JWTMaker) CreateToken(userID string, duration time.Duration) (string, *tk.Payload, error) {
	payload, err := tk.NewPayload(userID, duration)

	if err != nil {
		return "", nil, err
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	token, err := jwtToken.SignedString([]byte(maker.secretKey))

	return token, payload, err
}

// VerifyToken implements Maker.
func (maker *JWTMaker) VerifyToken(token string) (*tk.Payload, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, tk.ErrInvalidToken
		}

		return []byte(maker.secretKey), nil
	}

	jwtToken, err := jwt.ParseWithClaims(token, &tk.Payload{}, keyFunc)
	if err != nil {
		if strings.Contains(err.Error(), jwt.ErrTokenExpired.Error()) {
			return nil, tk.ErrExpiredToken
		}
		return nil, tk.ErrInvalidToken
	}

	payload, ok := jwtToken.Claims.(*tk.Payload)
	if !ok {
		return nil, tk.ErrInvalidToken
	}

	return payload, nil
}

func NewJWTMaker(secretKey string) (tk.Maker, error) {
	if len(secretKey) < tk.MinSecretKeySize {
		return nil, tk.ErrInvalidJWTKeySize
	}

	return &JWTMaker{secretKey}, nil
}
