package services

import (
	"context"
	"fmt"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/logger"
)

// AdminService handles superadmin management of staff accounts
type AdminService struct {
	adminStore  AdminStore
	hostelStore HostelStore
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminStore AdminStore, hostelStore HostelStore) *AdminService {
	return &AdminService{
		adminStore:  adminStore,
		hostelStore: hostelStore,
	}
}

// GetByID retrieves a staff account with the hostels it manages
func (s *AdminService) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	admin, err := s.adminStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	if admin == nil {
		return nil, apperrors.ErrAdminNotFound
	}

	hostels, err := s.hostelStore.GetByAdminID(ctx, id)
	if err == nil {
		admin.Hostels = hostels
	}

	return admin, nil
}

// List retrieves staff accounts, optionally filtered by role
func (s *AdminService) List(ctx context.Context, role string) ([]*models.Admin, error) {
	admins, err := s.adminStore.GetAll(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admins: %w", err)
	}
	return admins, nil
}

// Deactivate disables an admin account. Superadmins cannot be deactivated
// through this path.
func (s *AdminService) Deactivate(ctx context.Context, id int64) (*models.Admin, error) {
	admin, err := s.mutableAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.IsActive = false
	if err := s.adminStore.Update(ctx, admin); err != nil {
		return nil, fmt.Errorf("error updating admin: %w", err)
	}

	logger.Info().Int64("adminId", id).Msg("Admin deactivated")
	return admin, nil
}

// Activate re-enables a deactivated admin account
func (s *AdminService) Activate(ctx context.Context, id int64) (*models.Admin, error) {
	admin, err := s.mutableAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.IsActive = true
	if err := s.adminStore.Update(ctx, admin); err != nil {
		return nil, fmt.Errorf("error updating admin: %w", err)
	}

	logger.Info().Int64("adminId", id).Msg("Admin activated")
	return admin, nil
}

// Delete removes an admin account. Blocked while the admin still manages
// hostels.
func (s *AdminService) Delete(ctx context.Context, id int64) error {
	admin, err := s.mutableAdmin(ctx, id)
	if err != nil {
		return err
	}

	hostels, err := s.hostelStore.GetByAdminID(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking managed hostels: %w", err)
	}
	if len(hostels) > 0 {
		return apperrors.ErrAdminHasHostel
	}

	if err := s.adminStore.Delete(ctx, admin.ID); err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}

	logger.Info().Int64("adminId", id).Msg("Admin deleted")
	return nil
}

func (s *AdminService) mutableAdmin(ctx context.Context, id int64) (*models.Admin, error) {
	admin, err := s.adminStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	if admin == nil {
		return nil, apperrors.ErrAdminNotFound
	}
	if admin.Role == models.RoleSuperadmin {
		return nil, apperrors.ErrAdminImmutable
	}
	return admin, nil
}
