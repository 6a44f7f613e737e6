package paseto

import (
	"time"

	"github.com/aead/chacha20poly1305"
	tk "github.com/neobank/payflow/pkg/token"
	"github.com/o1egl/paseto"
)

// PasetoMaker is a PASETO token maker
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

// CreateToken implements Maker.
func (maker *PasetoMaker) CreateToken(userID string, duration time.Duration) (string, *tk.Payload, error) {
	payload, err := tk.NewPayload(userID, duration)

	if err != nil {
		return "", nil, err
	}

	token, err := maker.paseto.Encrypt(maker.symmetricKey, payload, nil)

	return token, payload, err
}

// VerifyToken implements Maker.
func (maker *PasetoMaker) VerifyToken(token string) (*tk.Payload, error) {
	payload := &tk.Payload{}

	err := maker.paseto.Decrypt(token, maker.symmetricKey, payload, nil)
	if err != nil {
		return nil, tk.ErrInvalidToken
	}

	if err := payload.Valid(); err != nil {
		return nil, err
	}

	return payload, nil
}

func NewPasetoMaker(symmetricKey string) (tk.Maker, error) {
	if len(symmetricKey) != chacha20poly1305.KeySize {
		return nil, tk.ErrInvalidPasetoKeySize
	}

	return &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: []byte(symmetricKey),
	}, nil
}
