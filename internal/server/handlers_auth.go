package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// loginRequest is the body of POST /api/auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the success body of POST /api/auth/login.
type loginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    domain.AuthUser `json:"user"`
}

// verifyResponse is the success body of GET /api/auth/verify.
type verifyResponse struct {
	Valid bool            `json:"valid"`
	User  domain.AuthUser `json:"user"`
}

// handleLogin authenticates an administrator and issues a bearer token.
func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, APIError{Message: "Invalid request body"})
	}

	if err := s.loginValidator.Validate(req.Username, req.Password); err != nil {
		return respondError(c, err, "Server error during login")
	}

	result, err := s.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err, "Server error during login")
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// handleVerify reports whether the presented bearer token is currently
// valid, using the same checks as the gating middleware.
func (s *Server) handleVerify(c echo.Context) error {
	token := auth.ExtractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		return c.JSON(http.StatusUnauthorized, APIError{Message: "No token provided"})
	}

	user, err := s.authService.VerifyToken(c.Request().Context(), token)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeForbidden) {
			return c.JSON(http.StatusForbidden, APIError{Message: "Invalid or expired token"})
		}
		if errors.IsErrorType(err, errors.ErrorTypeUnauthorized) {
			return c.JSON(http.StatusUnauthorized, APIError{Message: "Invalid token"})
		}
		return respondError(c, err, "Server error during verification")
	}

	return c.JSON(http.StatusOK, verifyResponse{Valid: true, User: *user})
}
