package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/errors"
)

// contextUserKey is the echo context key holding the authenticated identity.
const contextUserKey = "user"

// requireAdmin gates a route behind bearer token authentication. A missing
// or malformed header is 401; a token that fails the signature or expiry
// check is 403; a well-signed token whose admin account no longer exists is
// 401, which is what makes deleting the row an effective revocation.
func requireAdmin(authService *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.ExtractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, APIError{Message: "Access token required"})
			}

			user, err := authService.VerifyToken(c.Request().Context(), token)
			if err != nil {
				if errors.IsErrorType(err, errors.ErrorTypeForbidden) {
					return c.JSON(http.StatusForbidden, APIError{Message: "Invalid or expired token"})
				}
				if errors.IsErrorType(err, errors.ErrorTypeUnauthorized) {
					return c.JSON(http.StatusUnauthorized, APIError{Message: "Invalid token"})
				}
				return respondError(c, err, "Server error during authentication")
			}

			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}
