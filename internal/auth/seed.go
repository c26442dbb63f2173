package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/repository/sqlite"
)

// EnsureSeedAdmin creates the seed administrator account if no account with
// the configured username exists. This makes first-run behavior
// deterministic across environments. It is a development convenience: the
// default seed password in the config is a known weakness and must be
// overridden anywhere that matters.
func EnsureSeedAdmin(ctx context.Context, repo sqlite.Repository, username, password string, bcryptCost int) error {
	_, err := repo.GetAdminUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeDatabase, "failed to hash seed password")
	}

	user := &sqlite.AdminUserRow{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := repo.CreateAdminUser(ctx, user); err != nil {
		return err
	}

	logging.Debugf("seed admin user created (username: %s)\n", username)
	return nil
}
