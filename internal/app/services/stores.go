package services

import (
	"context"
	"time"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
)

// The store interfaces below name exactly the persistence operations the
// services consume. The pgx repositories satisfy them; the service tests
// substitute in-memory fakes.

// StudentStore is the persistence surface for student records
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Student, error)
	GetByPNR(ctx context.Context, pnr string) (*models.Student, error)
	ExistsByEmailOrPNR(ctx context.Context, email, pnr string) (bool, error)
	GetAll(ctx context.Context, status, year string) ([]*models.Student, error)
	UpdateProfile(ctx context.Context, student *models.Student) error
	SetApplicationStatus(ctx context.Context, studentID int64, status models.ApplicationStatus) error
	SetRoomAssignment(ctx context.Context, studentID, roomID int64, roomNumber, floor, hostelName string) error
	ClearRoomAssignment(ctx context.Context, studentID int64) error
	SetBlacklisted(ctx context.Context, studentID int64, blacklisted bool, remarks string) error
	SetRemarks(ctx context.Context, studentID int64, remarks string) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int, error)
	CountHoused(ctx context.Context) (int, error)
	CountBlacklisted(ctx context.Context) (int, error)
}

// AdminStore is the persistence surface for staff accounts
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Admin, error)
	ExistsByEmailOrAdminID(ctx context.Context, email, adminID string) (bool, error)
	GetAll(ctx context.Context, role string) ([]*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id int64) error
	HasSuperadmin(ctx context.Context) (bool, error)
}

// HostelStore is the persistence surface for hostels
type HostelStore interface {
	Create(ctx context.Context, hostel *models.Hostel) error
	GetByID(ctx context.Context, id int64) (*models.Hostel, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Hostel, error)
	GetByAdminID(ctx context.Context, adminID int64) ([]*models.Hostel, error)
	Update(ctx context.Context, hostel *models.Hostel) error
	SetAdmin(ctx context.Context, hostelID int64, adminID *int64) error
	Delete(ctx context.Context, id int64) error
	RecomputeAvailability(ctx context.Context, hostelID int64) error
	GetInventory(ctx context.Context, hostelID int64) (*dto.HostelInventoryResponse, error)
	GetDashboardEntries(ctx context.Context) ([]dto.HostelDashboardEntry, error)
	CountAll(ctx context.Context) (int, error)
}

// RoomStore is the persistence surface for rooms and their occupants
type RoomStore interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetByNaturalKey(ctx context.Context, hostelID int64, roomNumber, floor string) (*models.Room, error)
	ExistsByNaturalKey(ctx context.Context, hostelID int64, roomNumber, floor string) (bool, error)
	GetByHostelID(ctx context.Context, hostelID int64) ([]*models.Room, error)
	AcquireSeat(ctx context.Context, roomID int64) error
	ReleaseSeat(ctx context.Context, roomID int64) error
	AddOccupant(ctx context.Context, occupant *models.Occupant) error
	RemoveOccupant(ctx context.Context, roomID, studentID int64) error
	GetOccupants(ctx context.Context, roomID int64) ([]models.Occupant, error)
	UpdateOccupantDetails(ctx context.Context, studentID int64, name, pnr string) error
	Update(ctx context.Context, room *models.Room) error
	SetStatus(ctx context.Context, roomID int64, status models.RoomStatus, notes string) error
	Delete(ctx context.Context, id int64) error
	DeleteByHostelID(ctx context.Context, hostelID int64) error
	HasOccupiedRooms(ctx context.Context, hostelID int64) (bool, error)
	CountAll(ctx context.Context) (int, error)
	CountAvailable(ctx context.Context) (int, error)
}

// ApplicationStore is the persistence surface for hostel applications
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByStudentID(ctx context.Context, studentID int64) (*models.Application, error)
	GetByStudentPNR(ctx context.Context, pnr string) (*models.Application, error)
	GetAll(ctx context.Context, status, year string, hostelID int64) ([]*models.Application, error)
	Approve(ctx context.Context, id int64, roomNumber, floor string, approvedOn time.Time) error
	Reject(ctx context.Context, id int64, reason string) error
	SetStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	Disallocate(ctx context.Context, id int64, remarks string) error
	SetRoomMirror(ctx context.Context, id, hostelID int64, roomNumber, floor string) error
	Delete(ctx context.Context, id int64) error
	DeleteByHostelID(ctx context.Context, hostelID int64) error
	CountByStatus(ctx context.Context) (*dto.ApplicationStatusCounts, error)
}
