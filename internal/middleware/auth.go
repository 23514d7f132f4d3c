package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/pkg/tokenpkg"
	"github.com/go-biblio/biblio/pkg/web"
	"github.com/stretchr/testify/require"
)

// Keys and values used to pass authorization data through gin.
const (
	AuthorizationHeaderKey  = "authorization"
	AuthorizationTypeBearer = "bearer"
	AuthorizationPayloadKey = "authorization_payload"
)

// ErrNotEmployee indicates that the authenticated user lacks the employee role.
var ErrNotEmployee = errors.New("employee role required")

// AddAuthorization sets a valid bearer token on the request. Test helper.
func AddAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker tokenpkg.Maker,
	authorizationType string,
	username string,
	duration time.Duration,
) {
	token, _, err := tokenMaker.CreateToken(username, duration)
	require.NoError(t, err)

	authorizationHeader := fmt.Sprintf("%s %s", authorizationType, token)
	request.Header.Set(AuthorizationHeaderKey, authorizationHeader)
}

// AuthMiddleware verifies the bearer token and stores its payload in the context.
func AuthMiddleware(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(AuthorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != AuthorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authorizationType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		accessToken := fields[1]
		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		ctx.Set(AuthorizationPayloadKey, payload)
		ctx.Next()
	}
}

// UserGetter resolves usernames to users for role checks.
//
//go:generate mockgen -source auth.go -destination auth_mock.go -package middleware
type UserGetter interface {
	Get(ctx context.Context, username string) (domain.User, error)
}

// RequireEmployee rejects requests whose authenticated user is not an
// employee. It must run after AuthMiddleware.
func RequireEmployee(users UserGetter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := ctx.MustGet(AuthorizationPayloadKey).(*tokenpkg.Payload)

		user, err := users.Get(ctx.Request.Context(), payload.Username)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		if user.Role != domain.RoleEmployee {
			ctx.AbortWithStatusJSON(http.StatusForbidden, web.Error(ErrNotEmployee))
			return
		}

		ctx.Next()
	}
}
