// Package seed creates the default records a fresh database needs.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/db"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
	"github.com/eduverse/eduverse/internal/pkg/auth"
)

// defaultAdminEmail is the bootstrap admin account. The password must be
// changed after first login.
const (
	defaultAdminEmail    = "admin@eduverse.app"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData creates the default admin account when no account with
// the admin email exists. Already-present data is left untouched.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(database)

	_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "EduVerse Admin",
		Email:    defaultAdminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("default admin account created")
	return nil
}
