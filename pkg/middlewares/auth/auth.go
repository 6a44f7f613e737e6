package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	res "github.com/neobank/payflow/pkg/http_response"
	"github.com/neobank/payflow/pkg/session"
	"github.com/neobank/payflow/pkg/token"
	"github.com/stretchr/testify/require"
)

const (
	AuthHeaderKey  = "authorization"
	AuthTypeBearer = "bearer"
	AuthPayloadKey = "auth_payload"
	SessionKey     = "auth_session"
)

// AddAuthorization adds an authorization header to the request for testing
func AddAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker token.Maker,
	authType string,
	userID string,
	duration time.Duration,
) {
	accessToken, payload, err := tokenMaker.CreateToken(userID, duration)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	authHeader := fmt.Sprintf("%s %s", authType, accessToken)
	request.Header.Set(AuthHeaderKey, authHeader)
}

// AuthMiddleWare is a gin middleware for authentication. On success it stores
// the verified token payload and an explicit session object on the context.
func AuthMiddleWare(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader(AuthHeaderKey)

		if len(authHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res.ErrorResponse(http.StatusUnauthorized, err.Error()))
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res.ErrorResponse(http.StatusUnauthorized, err.Error()))
			return
		}

		authType := strings.ToLower(fields[0])

		if authType != AuthTypeBearer {
			err := errors.New("unsupported authorization type")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res.ErrorResponse(http.StatusUnauthorized, err.Error()))
			return
		}

		accessToken := fields[1]

		payload, err := tokenMaker.VerifyToken(accessToken)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res.ErrorResponse(http.StatusUnauthorized, err.Error()))
			return
		}

		ctx.Set(AuthPayloadKey, payload)
		ctx.Set(SessionKey, session.FromPayload(payload, accessToken))
		ctx.Next()
	}
}
