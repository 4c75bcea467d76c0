package middleware

import (
	"strings"

	"petclinic/internal/delivery/http/response"
	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// identityKey is the echo context key holding the authenticated identity.
const identityKey = "identity"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the proven
// identity for downstream handlers. The token is the only session state;
// nothing is looked up server-side.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "缺少授權權杖")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "授權標頭必須為 Bearer 格式")
		}

		identity, err := m.tokenSvc.Decode(tokenString)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
			}

			return response.Unauthorized(c, "TOKEN_MALFORMED", domainerrors.ErrTokenMalformed.Message())
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// IdentityFromContext returns the identity stored by Authenticate.
func IdentityFromContext(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok
}
