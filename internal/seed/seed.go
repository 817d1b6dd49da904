package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	appRepos "github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Default superadmin credentials, overridable through the environment. A
// fresh deployment has nobody who can register staff, so one superadmin is
// bootstrapped here.
const (
	defaultSuperadminEmail    = "superadmin@hostel-mgmt.app"
	defaultSuperadminAdminID  = "SUPERADMIN"
	defaultSuperadminPassword = "ChangeMe123!"
)

// CreateDefaultData seeds the initial superadmin account if the admins table
// has no superadmin yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default superadmin account...")

	exists, err := adminRepo.HasSuperadmin(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing superadmin")
		return err
	}
	if exists {
		lgr.Info().Msg("Superadmin already exists, skipping creation")
		return nil
	}

	email := envOr("SEED_SUPERADMIN_EMAIL", defaultSuperadminEmail)
	adminID := envOr("SEED_SUPERADMIN_ADMIN_ID", defaultSuperadminAdminID)
	password := envOr("SEED_SUPERADMIN_PASSWORD", defaultSuperadminPassword)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing superadmin password")
		return err
	}

	superadmin := &appModels.Admin{
		Name:     "System Superadmin",
		Email:    email,
		AdminID:  adminID,
		Password: string(hashedPassword),
		Role:     appModels.RoleSuperadmin,
		IsActive: true,
	}

	if err := adminRepo.Create(ctx, superadmin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default superadmin")
		return errors.Join(errors.New("failed to seed superadmin"), err)
	}

	lgr.Info().
		Int64("adminID", superadmin.ID).
		Str("email", email).
		Msg("Default superadmin created successfully")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
