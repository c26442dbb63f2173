package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqlite"
)

// Claims defines the information embedded in a bearer token.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and verifies bearer tokens for administrator accounts.
type Service struct {
	repo     sqlite.Repository
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new auth service. The secret signs tokens with
// HMAC-SHA256; tokenTTL bounds their validity window.
func NewService(repo sqlite.Repository, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// LoginResult carries the signed token and the authenticated identity.
type LoginResult struct {
	Token string
	User  domain.AuthUser
}

// Login checks the credentials against the credential store and, on match,
// issues a signed token embedding the admin's id and username. Unknown
// username and wrong password fail identically so callers cannot enumerate
// accounts; the hash comparison is constant-time via bcrypt.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.GetAdminUserByUsername(ctx, username)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewUnauthorizedError("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.issueToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  domain.AuthUser{ID: user.ID, Username: user.Username},
	}, nil
}

// issueToken signs a new token for the given identity.
func (s *Service) issueToken(userID int64, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		// Signing failures are server-side faults, never client mistakes.
		return "", errors.WrapError(err, errors.ErrorTypeDatabase, "failed to sign token")
	}
	return signed, nil
}

// VerifyToken parses and verifies a bearer token, then re-queries the
// credential store for the embedded id. A structurally valid token whose
// account has been deleted is rejected, which makes revocation as simple as
// removing the row.
func (s *Service) VerifyToken(ctx context.Context, tokenString string) (*domain.AuthUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewForbiddenError("Invalid or expired token", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.NewForbiddenError("Invalid or expired token", nil)
	}

	user, err := s.repo.GetAdminUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewUnauthorizedError("Invalid token")
		}
		return nil, err
	}

	return &domain.AuthUser{ID: user.ID, Username: user.Username}, nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// It returns an empty string when the header is absent or not a Bearer
// scheme.
func ExtractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
