package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
)

// HostelRepository handles database operations for hostels
type HostelRepository struct {
	db *pgxpool.Pool
}

// NewHostelRepository creates a new hostel repository
func NewHostelRepository(db *pgxpool.Pool) *HostelRepository {
	return &HostelRepository{
		db: db,
	}
}

const hostelColumns = `
	id, name, description, location, warden, warden_phone, capacity,
	available_rooms, gender, rent_per_month, amenities, rules, image,
	admin_id, is_active, created_at, updated_at
`

func scanHostel(row pgx.Row) (*models.Hostel, error) {
	var hostel models.Hostel
	err := row.Scan(
		&hostel.ID,
		&hostel.Name,
		&hostel.Description,
		&hostel.Location,
		&hostel.Warden,
		&hostel.WardenPhone,
		&hostel.Capacity,
		&hostel.AvailableRooms,
		&hostel.Gender,
		&hostel.RentPerMonth,
		&hostel.Amenities,
		&hostel.Rules,
		&hostel.Image,
		&hostel.AdminID,
		&hostel.IsActive,
		&hostel.CreatedAt,
		&hostel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hostel, nil
}

// Create inserts a new hostel and fills in its generated ID
func (r *HostelRepository) Create(ctx context.Context, hostel *models.Hostel) error {
	query := `
		INSERT INTO hostels (name, description, location, warden, warden_phone, gender, rent_per_month, amenities, rules, image, admin_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		hostel.Name, hostel.Description, hostel.Location, hostel.Warden,
		hostel.WardenPhone, hostel.Gender, hostel.RentPerMonth,
		hostel.Amenities, hostel.Rules, hostel.Image, hostel.AdminID,
	).Scan(&hostel.ID, &hostel.CreatedAt, &hostel.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating hostel: %w", err)
	}

	return nil
}

// GetByID retrieves a hostel by ID, returning nil when no row matches
func (r *HostelRepository) GetByID(ctx context.Context, id int64) (*models.Hostel, error) {
	query := `SELECT ` + hostelColumns + ` FROM hostels WHERE id = $1`

	hostel, err := scanHostel(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}

	return hostel, nil
}

// ExistsByName checks whether a hostel with the given name exists
func (r *HostelRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM hostels WHERE name = $1)`,
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking hostel existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all hostels
func (r *HostelRepository) GetAll(ctx context.Context) ([]*models.Hostel, error) {
	query := `SELECT ` + hostelColumns + ` FROM hostels ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hostels []*models.Hostel
	for rows.Next() {
		hostel, err := scanHostel(rows)
		if err != nil {
			return nil, err
		}
		hostels = append(hostels, hostel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hostels, nil
}

// GetByAdminID retrieves the hostels managed by the given admin
func (r *HostelRepository) GetByAdminID(ctx context.Context, adminID int64) ([]*models.Hostel, error) {
	query := `SELECT ` + hostelColumns + ` FROM hostels WHERE admin_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hostels []*models.Hostel
	for rows.Next() {
		hostel, err := scanHostel(rows)
		if err != nil {
			return nil, err
		}
		hostels = append(hostels, hostel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hostels, nil
}

// Update overwrites a hostel's editable fields
func (r *HostelRepository) Update(ctx context.Context, hostel *models.Hostel) error {
	query := `
		UPDATE hostels
		SET name = $1, description = $2, location = $3, warden = $4, warden_phone = $5,
		    rent_per_month = $6, amenities = $7, rules = $8, image = $9, is_active = $10,
		    updated_at = NOW()
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		hostel.Name, hostel.Description, hostel.Location, hostel.Warden,
		hostel.WardenPhone, hostel.RentPerMonth, hostel.Amenities, hostel.Rules,
		hostel.Image, hostel.IsActive, hostel.ID)
	if err != nil {
		return fmt.Errorf("error updating hostel: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SetAdmin reassigns the hostel's managing admin
func (r *HostelRepository) SetAdmin(ctx context.Context, hostelID int64, adminID *int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE hostels SET admin_id = $1, updated_at = NOW() WHERE id = $2`,
		adminID, hostelID)
	if err != nil {
		return fmt.Errorf("error changing hostel admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a hostel record
func (r *HostelRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM hostels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting hostel: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// RecomputeAvailability refreshes the denormalized counters on the hostel
// record from the rooms table. A room counts as available while it still has
// free seats and is not damaged or under maintenance.
func (r *HostelRepository) RecomputeAvailability(ctx context.Context, hostelID int64) error {
	query := `
		UPDATE hostels
		SET capacity = (
			SELECT COUNT(*) FROM rooms WHERE hostel_id = $1
		),
		available_rooms = (
			SELECT COUNT(*) FROM rooms
			WHERE hostel_id = $1
			  AND occupied_spaces < capacity
			  AND status IN ('empty', 'filled')
		),
		updated_at = NOW()
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, hostelID)
	if err != nil {
		return fmt.Errorf("error recomputing hostel availability: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// GetInventory aggregates the seat level view of one hostel
func (r *HostelRepository) GetInventory(ctx context.Context, hostelID int64) (*dto.HostelInventoryResponse, error) {
	query := `
		SELECT h.id, h.name,
		       COUNT(r.id),
		       COUNT(r.id) FILTER (WHERE r.occupied_spaces < r.capacity AND r.status IN ('empty', 'filled')),
		       COALESCE(SUM(r.capacity), 0),
		       COALESCE(SUM(r.occupied_spaces), 0),
		       COUNT(r.id) FILTER (WHERE r.status = 'damaged'),
		       COUNT(r.id) FILTER (WHERE r.status = 'maintenance')
		FROM hostels h
		LEFT JOIN rooms r ON r.hostel_id = h.id
		WHERE h.id = $1
		GROUP BY h.id, h.name
	`

	var inv dto.HostelInventoryResponse
	err := r.db.QueryRow(ctx, query, hostelID).Scan(
		&inv.HostelID,
		&inv.HostelName,
		&inv.TotalRooms,
		&inv.AvailableRooms,
		&inv.TotalSeats,
		&inv.OccupiedSeats,
		&inv.DamagedRooms,
		&inv.MaintenanceRooms,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error aggregating hostel inventory: %w", err)
	}

	floorQuery := `
		SELECT floor, COUNT(*), COALESCE(SUM(capacity), 0), COALESCE(SUM(occupied_spaces), 0)
		FROM rooms
		WHERE hostel_id = $1
		GROUP BY floor
		ORDER BY floor
	`

	rows, err := r.db.Query(ctx, floorQuery, hostelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f dto.FloorSeatMap
		if err := rows.Scan(&f.Floor, &f.TotalRooms, &f.TotalSeats, &f.OccupiedSeats); err != nil {
			return nil, err
		}
		inv.Floors = append(inv.Floors, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &inv, nil
}

// GetDashboardEntries aggregates the per-hostel rows of the detailed dashboard
func (r *HostelRepository) GetDashboardEntries(ctx context.Context) ([]dto.HostelDashboardEntry, error) {
	query := `
		SELECT h.id, h.name, h.gender,
		       COUNT(r.id),
		       COUNT(r.id) FILTER (WHERE r.occupied_spaces < r.capacity AND r.status IN ('empty', 'filled')),
		       COALESCE(SUM(r.capacity), 0),
		       COALESCE(SUM(r.occupied_spaces), 0),
		       COUNT(r.id) FILTER (WHERE r.status = 'damaged'),
		       COUNT(r.id) FILTER (WHERE r.status = 'maintenance')
		FROM hostels h
		LEFT JOIN rooms r ON r.hostel_id = h.id
		GROUP BY h.id, h.name, h.gender
		ORDER BY h.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []dto.HostelDashboardEntry
	for rows.Next() {
		var e dto.HostelDashboardEntry
		if err := rows.Scan(
			&e.HostelID,
			&e.HostelName,
			&e.Gender,
			&e.TotalRooms,
			&e.AvailableRooms,
			&e.TotalSeats,
			&e.OccupiedSeats,
			&e.DamagedRooms,
			&e.MaintenanceRooms,
		); err != nil {
			return nil, err
		}
		e.HousedStudents = e.OccupiedSeats
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// CountAll returns the total number of hostels
func (r *HostelRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hostels`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting hostels: %w", err)
	}
	return count, nil
}
