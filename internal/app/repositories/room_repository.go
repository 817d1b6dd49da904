package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
)

// Room error types
var (
	// ErrNoFreeSeat is returned by AcquireSeat when the room is already at
	// capacity or not open for allocation.
	ErrNoFreeSeat = errors.New("room has no free seat")
)

// RoomRepository handles database operations for rooms and their occupants
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
	}
}

const roomColumns = `
	id, hostel_id, room_number, floor, capacity, occupied_spaces,
	status, notes, last_inspection, created_at, updated_at
`

func scanRoom(row pgx.Row) (*models.Room, error) {
	var room models.Room
	err := row.Scan(
		&room.ID,
		&room.HostelID,
		&room.RoomNumber,
		&room.Floor,
		&room.Capacity,
		&room.OccupiedSpaces,
		&room.Status,
		&room.Notes,
		&room.LastInspection,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Create inserts a new room and fills in its generated ID
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (hostel_id, room_number, floor, capacity, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		room.HostelID, room.RoomNumber, room.Floor, room.Capacity, room.Status, room.Notes,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by ID, returning nil when no row matches
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return room, nil
}

// GetByNaturalKey retrieves a room by its hostel, number and floor
func (r *RoomRepository) GetByNaturalKey(ctx context.Context, hostelID int64, roomNumber, floor string) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hostel_id = $1 AND room_number = $2 AND floor = $3`

	room, err := scanRoom(r.db.QueryRow(ctx, query, hostelID, roomNumber, floor))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return room, nil
}

// ExistsByNaturalKey checks whether a room with the same number and floor
// already exists in the hostel
func (r *RoomRepository) ExistsByNaturalKey(ctx context.Context, hostelID int64, roomNumber, floor string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM rooms WHERE hostel_id = $1 AND room_number = $2 AND floor = $3)`,
		hostelID, roomNumber, floor).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking room existence: %w", err)
	}

	return exists, nil
}

// GetByHostelID retrieves all rooms of a hostel ordered by floor and number
func (r *RoomRepository) GetByHostelID(ctx context.Context, hostelID int64) ([]*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hostel_id = $1 ORDER BY floor, room_number`

	rows, err := r.db.Query(ctx, query, hostelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// AcquireSeat claims one seat in the room. The guard in the WHERE clause
// makes the check and the increment a single atomic statement, so two
// concurrent claims on the last seat cannot both succeed. Rooms that are
// damaged or under maintenance never hand out seats.
func (r *RoomRepository) AcquireSeat(ctx context.Context, roomID int64) error {
	query := `
		UPDATE rooms
		SET occupied_spaces = occupied_spaces + 1,
		    status = CASE WHEN occupied_spaces + 1 >= capacity THEN 'filled' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1
		  AND occupied_spaces < capacity
		  AND status IN ('empty', 'filled')
	`

	cmdTag, err := r.db.Exec(ctx, query, roomID)
	if err != nil {
		return fmt.Errorf("error acquiring seat: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNoFreeSeat
	}

	return nil
}

// ReleaseSeat frees one seat in the room, never dropping below zero. Staff
// set statuses (damaged, maintenance) survive the release.
func (r *RoomRepository) ReleaseSeat(ctx context.Context, roomID int64) error {
	query := `
		UPDATE rooms
		SET occupied_spaces = GREATEST(occupied_spaces - 1, 0),
		    status = CASE
		        WHEN status IN ('damaged', 'maintenance') THEN status
		        WHEN GREATEST(occupied_spaces - 1, 0) >= capacity THEN 'filled'
		        ELSE 'empty'
		    END,
		    updated_at = NOW()
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, roomID)
	if err != nil {
		return fmt.Errorf("error releasing seat: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// AddOccupant records a student inside a room. The unique index on
// student_id rejects a second row for the same student.
func (r *RoomRepository) AddOccupant(ctx context.Context, occupant *models.Occupant) error {
	query := `
		INSERT INTO room_occupants (room_id, student_id, student_name, student_pnr)
		VALUES ($1, $2, $3, $4)
		RETURNING assigned_at
	`

	err := r.db.QueryRow(ctx, query,
		occupant.RoomID, occupant.StudentID, occupant.Name, occupant.PNR,
	).Scan(&occupant.AssignedAt)
	if err != nil {
		return fmt.Errorf("error adding room occupant: %w", err)
	}

	return nil
}

// RemoveOccupant deletes the occupancy row of a student in a room
func (r *RoomRepository) RemoveOccupant(ctx context.Context, roomID, studentID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM room_occupants WHERE room_id = $1 AND student_id = $2`,
		roomID, studentID)
	if err != nil {
		return fmt.Errorf("error removing room occupant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// GetOccupants lists the students currently housed in a room
func (r *RoomRepository) GetOccupants(ctx context.Context, roomID int64) ([]models.Occupant, error) {
	query := `
		SELECT room_id, student_id, student_name, student_pnr, assigned_at
		FROM room_occupants
		WHERE room_id = $1
		ORDER BY assigned_at
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var occupants []models.Occupant
	for rows.Next() {
		var o models.Occupant
		if err := rows.Scan(&o.RoomID, &o.StudentID, &o.Name, &o.PNR, &o.AssignedAt); err != nil {
			return nil, err
		}
		occupants = append(occupants, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return occupants, nil
}

// UpdateOccupantDetails refreshes the denormalized student fields on the
// occupancy row after a profile change
func (r *RoomRepository) UpdateOccupantDetails(ctx context.Context, studentID int64, name, pnr string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE room_occupants SET student_name = $1, student_pnr = $2 WHERE student_id = $3`,
		name, pnr, studentID)
	if err != nil {
		return fmt.Errorf("error updating room occupant details: %w", err)
	}

	return nil
}

// Update overwrites a room's editable fields
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET capacity = $1, notes = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, room.Capacity, room.Notes, room.ID)
	if err != nil {
		return fmt.Errorf("error updating room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SetStatus sets the room status and appends inspection notes
func (r *RoomRepository) SetStatus(ctx context.Context, roomID int64, status models.RoomStatus, notes string) error {
	query := `
		UPDATE rooms
		SET status = $1, notes = $2, last_inspection = NOW(), updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, status, notes, roomID)
	if err != nil {
		return fmt.Errorf("error changing room status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a room record
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// DeleteByHostelID removes all rooms of a hostel
func (r *RoomRepository) DeleteByHostelID(ctx context.Context, hostelID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE hostel_id = $1`, hostelID)
	if err != nil {
		return fmt.Errorf("error deleting hostel rooms: %w", err)
	}

	return nil
}

// HasOccupiedRooms reports whether any room of the hostel still houses students
func (r *RoomRepository) HasOccupiedRooms(ctx context.Context, hostelID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM rooms WHERE hostel_id = $1 AND occupied_spaces > 0)`,
		hostelID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking occupied rooms: %w", err)
	}

	return exists, nil
}

// CountAll returns the total number of rooms
func (r *RoomRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting rooms: %w", err)
	}
	return count, nil
}

// CountAvailable returns the number of rooms that can still take students
func (r *RoomRepository) CountAvailable(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM rooms
		WHERE occupied_spaces < capacity AND status IN ('empty', 'filled')`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting available rooms: %w", err)
	}
	return count, nil
}
