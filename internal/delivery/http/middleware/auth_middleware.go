// Package middleware contains the echo middleware specific to the user HTTP API.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "userauth/internal/delivery/context"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/service"
	"userauth/internal/errors"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and attaches the caller's identity.
//
// The token is the second whitespace-separated segment of the Authorization
// header; the scheme word is not checked. A header without a second segment
// verifies as an empty token and is rejected as an invalid signature.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenSvc.Verify(extractToken(authHeader))
		if err != nil {
			switch {
			case errors.Is(err, domainerrors.ErrTokenExpired):
				return domainerrors.ErrTokenExpired
			case errors.Is(err, domainerrors.ErrTokenSignatureInvalid):
				return domainerrors.ErrTokenSignatureInvalid
			default:
				return errors.Wrap(domainerrors.ErrInternalError, err.Error())
			}
		}

		deliverycontext.SetIdentity(c, deliverycontext.Identity{ID: claims.UserID})

		return next(c)
	}
}

func extractToken(authHeader string) string {
	fields := strings.Fields(authHeader)
	if len(fields) < 2 {
		return ""
	}

	return fields[1]
}
