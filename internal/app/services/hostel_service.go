package services

import (
	"context"
	"fmt"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/apperrors"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/cache"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/logger"
)

// HostelService handles hostel and room inventory management
type HostelService struct {
	hostelStore      HostelStore
	roomStore        RoomStore
	adminStore       AdminStore
	applicationStore ApplicationStore
	cache            cache.Cache
}

// NewHostelService creates a new hostel service instance
func NewHostelService(hostelStore HostelStore, roomStore RoomStore, adminStore AdminStore, applicationStore ApplicationStore, c cache.Cache) *HostelService {
	return &HostelService{
		hostelStore:      hostelStore,
		roomStore:        roomStore,
		adminStore:       adminStore,
		applicationStore: applicationStore,
		cache:            c,
	}
}

// Create registers a new hostel
func (s *HostelService) Create(ctx context.Context, req *dto.CreateHostelRequest) (*models.Hostel, error) {
	exists, err := s.hostelStore.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking hostel: %w", err)
	}
	if exists {
		return nil, apperrors.ErrHostelExists
	}

	if req.AdminID != nil {
		if err := s.checkAssignableAdmin(ctx, *req.AdminID); err != nil {
			return nil, err
		}
	}

	hostel := &models.Hostel{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Warden:       req.Warden,
		WardenPhone:  req.WardenPhone,
		Gender:       models.Gender(req.Gender),
		RentPerMonth: req.RentPerMonth,
		Amenities:    req.Amenities,
		Rules:        req.Rules,
		Image:        req.Image,
		AdminID:      req.AdminID,
		IsActive:     true,
	}

	if err := s.hostelStore.Create(ctx, hostel); err != nil {
		return nil, fmt.Errorf("error creating hostel: %w", err)
	}

	logger.Info().Int64("hostelId", hostel.ID).Str("name", hostel.Name).Msg("Hostel created")
	return hostel, nil
}

// GetByID retrieves a hostel with its managing admin attached
func (s *HostelService) GetByID(ctx context.Context, id int64) (*models.Hostel, error) {
	hostel, err := s.hostelStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil {
		return nil, apperrors.ErrHostelNotFound
	}

	if hostel.AdminID != nil {
		admin, err := s.adminStore.GetByID(ctx, *hostel.AdminID)
		if err == nil && admin != nil {
			hostel.Admin = admin
		}
	}

	return hostel, nil
}

// List retrieves hostels. Disabled hostels are excluded unless
// includeInactive is set; the public catalog only shows active ones.
func (s *HostelService) List(ctx context.Context, includeInactive bool) ([]*models.Hostel, error) {
	hostels, err := s.hostelStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostels: %w", err)
	}
	if includeInactive {
		return hostels, nil
	}

	active := make([]*models.Hostel, 0, len(hostels))
	for _, h := range hostels {
		if h.IsActive {
			active = append(active, h)
		}
	}
	return active, nil
}

// SetActive enables or disables a hostel. A disabled hostel disappears from
// the public catalog and stops accepting applications; housed students and
// existing applications are untouched.
func (s *HostelService) SetActive(ctx context.Context, id int64, active bool) (*models.Hostel, error) {
	hostel, err := s.hostelStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil {
		return nil, apperrors.ErrHostelNotFound
	}

	if hostel.IsActive != active {
		hostel.IsActive = active
		if err := s.hostelStore.Update(ctx, hostel); err != nil {
			return nil, fmt.Errorf("error updating hostel: %w", err)
		}
		s.invalidateDashboard(ctx)
	}

	logger.Info().Int64("hostelId", id).Bool("active", active).Msg("Hostel active state changed")
	return hostel, nil
}

// ListManagedBy retrieves the hostels managed by an admin
func (s *HostelService) ListManagedBy(ctx context.Context, adminID int64) ([]*models.Hostel, error) {
	hostels, err := s.hostelStore.GetByAdminID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostels: %w", err)
	}
	return hostels, nil
}

// Update applies the non-nil fields of the request to the hostel
func (s *HostelService) Update(ctx context.Context, id int64, req *dto.UpdateHostelRequest) (*models.Hostel, error) {
	hostel, err := s.hostelStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil {
		return nil, apperrors.ErrHostelNotFound
	}

	if req.Name != nil && *req.Name != hostel.Name {
		exists, err := s.hostelStore.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("error checking hostel: %w", err)
		}
		if exists {
			return nil, apperrors.ErrHostelExists
		}
		hostel.Name = *req.Name
	}
	if req.Description != nil {
		hostel.Description = *req.Description
	}
	if req.Location != nil {
		hostel.Location = *req.Location
	}
	if req.Warden != nil {
		hostel.Warden = *req.Warden
	}
	if req.WardenPhone != nil {
		hostel.WardenPhone = *req.WardenPhone
	}
	if req.RentPerMonth != nil {
		hostel.RentPerMonth = *req.RentPerMonth
	}
	if req.Amenities != nil {
		hostel.Amenities = req.Amenities
	}
	if req.Rules != nil {
		hostel.Rules = req.Rules
	}
	if req.Image != nil {
		hostel.Image = *req.Image
	}

	if err := s.hostelStore.Update(ctx, hostel); err != nil {
		return nil, fmt.Errorf("error updating hostel: %w", err)
	}

	return hostel, nil
}

// ChangeAdmin moves the hostel under a different admin. Superadmins run the
// whole system and never own an individual hostel.
func (s *HostelService) ChangeAdmin(ctx context.Context, hostelID, adminID int64) (*models.Hostel, error) {
	hostel, err := s.hostelStore.GetByID(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil {
		return nil, apperrors.ErrHostelNotFound
	}

	if err := s.checkAssignableAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	if err := s.hostelStore.SetAdmin(ctx, hostelID, &adminID); err != nil {
		return nil, fmt.Errorf("error changing hostel admin: %w", err)
	}
	hostel.AdminID = &adminID

	logger.Info().Int64("hostelId", hostelID).Int64("adminId", adminID).Msg("Hostel admin changed")
	return hostel, nil
}

// Delete removes a hostel together with its rooms and applications. Blocked
// while any room still houses students.
func (s *HostelService) Delete(ctx context.Context, id int64) error {
	hostel, err := s.hostelStore.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil {
		return apperrors.ErrHostelNotFound
	}

	occupied, err := s.roomStore.HasOccupiedRooms(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking occupancy: %w", err)
	}
	if occupied {
		return apperrors.ErrHostelOccupied
	}

	if err := s.applicationStore.DeleteByHostelID(ctx, id); err != nil {
		return fmt.Errorf("error deleting applications: %w", err)
	}
	if err := s.roomStore.DeleteByHostelID(ctx, id); err != nil {
		return fmt.Errorf("error deleting rooms: %w", err)
	}
	if err := s.hostelStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting hostel: %w", err)
	}

	s.invalidateDashboard(ctx)

	logger.Info().Int64("hostelId", id).Str("name", hostel.Name).Msg("Hostel deleted")
	return nil
}

// AddRoom creates a room inside a hostel and refreshes the hostel counters
func (s *HostelService) AddRoom(ctx context.Context, hostelID int64, req *dto.CreateRoomRequest) (*models.Room, error) {
	hostel, err := s.hostelStore.GetByID(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil {
		return nil, apperrors.ErrHostelNotFound
	}

	exists, err := s.roomStore.ExistsByNaturalKey(ctx, hostelID, req.RoomNumber, req.Floor)
	if err != nil {
		return nil, fmt.Errorf("error checking room: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRoomExists
	}

	room := &models.Room{
		HostelID:   hostelID,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Capacity:   req.Capacity,
		Status:     models.RoomEmpty,
		Notes:      req.Notes,
	}

	if err := s.roomStore.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("error creating room: %w", err)
	}

	s.refreshAvailability(ctx, hostelID)

	logger.Info().Int64("roomId", room.ID).Int64("hostelId", hostelID).Msg("Room created")
	return room, nil
}

// ListRooms retrieves the rooms of a hostel with their occupants
func (s *HostelService) ListRooms(ctx context.Context, hostelID int64) ([]*models.Room, error) {
	hostel, err := s.hostelStore.GetByID(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	if hostel == nil {
		return nil, apperrors.ErrHostelNotFound
	}

	rooms, err := s.roomStore.GetByHostelID(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}

	for _, room := range rooms {
		occupants, err := s.roomStore.GetOccupants(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving occupants: %w", err)
		}
		room.Occupants = occupants
	}

	return rooms, nil
}

// GetRoom retrieves a single room with its occupants
func (s *HostelService) GetRoom(ctx context.Context, roomID int64) (*models.Room, error) {
	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	occupants, err := s.roomStore.GetOccupants(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving occupants: %w", err)
	}
	room.Occupants = occupants

	return room, nil
}

// UpdateRoom applies the non-nil fields of the request. Capacity can never
// drop below current occupancy.
func (s *HostelService) UpdateRoom(ctx context.Context, roomID int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if req.Capacity != nil {
		if *req.Capacity < room.OccupiedSpaces {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "capacity cannot be below current occupancy")
		}
		room.Capacity = *req.Capacity
	}
	if req.Notes != nil {
		room.Notes = *req.Notes
	}

	if err := s.roomStore.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("error updating room: %w", err)
	}

	s.refreshAvailability(ctx, room.HostelID)
	return room, nil
}

// DeleteRoom removes an empty room
func (s *HostelService) DeleteRoom(ctx context.Context, roomID int64) error {
	room, err := s.roomStore.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("error retrieving room: %w", err)
	}
	if room == nil {
		return apperrors.ErrRoomNotFound
	}
	if room.OccupiedSpaces > 0 {
		return apperrors.NewCustomError(apperrors.ErrConflict, "room still houses students")
	}

	if err := s.roomStore.Delete(ctx, roomID); err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}

	s.refreshAvailability(ctx, room.HostelID)

	logger.Info().Int64("roomId", roomID).Msg("Room deleted")
	return nil
}

// GetInventory returns the seat level inventory view of a hostel
func (s *HostelService) GetInventory(ctx context.Context, hostelID int64) (*dto.HostelInventoryResponse, error) {
	inv, err := s.hostelStore.GetInventory(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error aggregating inventory: %w", err)
	}
	if inv == nil {
		return nil, apperrors.ErrHostelNotFound
	}
	return inv, nil
}

// checkAssignableAdmin verifies the target exists and carries the admin role
func (s *HostelService) checkAssignableAdmin(ctx context.Context, adminID int64) error {
	admin, err := s.adminStore.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("error retrieving admin: %w", err)
	}
	if admin == nil {
		return apperrors.ErrAdminNotFound
	}
	if admin.Role != models.RoleAdmin {
		return apperrors.ErrAdminImmutable
	}
	return nil
}

func (s *HostelService) refreshAvailability(ctx context.Context, hostelID int64) {
	if err := s.hostelStore.RecomputeAvailability(ctx, hostelID); err != nil {
		logger.Warn().Err(err).Int64("hostelId", hostelID).Msg("Failed to recompute hostel availability")
	}
}

func (s *HostelService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, "dashboard"); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate dashboard cache")
	}
}
