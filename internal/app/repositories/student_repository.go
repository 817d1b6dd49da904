package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	id, name, email, pnr, password, gender, year, phone, address,
	parent_name, parent_phone, application_status, assigned_room_id,
	room_number, floor, hostel_name, is_blacklisted, remarks,
	is_active, created_at, updated_at
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.PNR,
		&student.Password,
		&student.Gender,
		&student.Year,
		&student.Phone,
		&student.Address,
		&student.ParentName,
		&student.ParentPhone,
		&student.ApplicationStatus,
		&student.AssignedRoomID,
		&student.RoomNumber,
		&student.Floor,
		&student.HostelName,
		&student.IsBlacklisted,
		&student.Remarks,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student and fills in its generated ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, pnr, password, gender, year, phone, address, parent_name, parent_phone, application_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.Email, student.PNR, student.Password,
		student.Gender, student.Year, student.Phone, student.Address,
		student.ParentName, student.ParentPhone, student.ApplicationStatus,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID, returning nil when no row matches
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByIdentifier retrieves a student by email or PNR
func (r *StudentRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1 OR pnr = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, identifier))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByPNR retrieves a student by PNR
func (r *StudentRepository) GetByPNR(ctx context.Context, pnr string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE pnr = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, pnr))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ExistsByEmailOrPNR checks whether a student with the given email or PNR exists
func (r *StudentRepository) ExistsByEmailOrPNR(ctx context.Context, email, pnr string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 OR pnr = $2)`,
		email, pnr).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves students, optionally filtered by application status and year
func (r *StudentRepository) GetAll(ctx context.Context, status, year string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE 1=1`
	args := []interface{}{}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND application_status = $%d", len(args))
	}
	if year != "" {
		args = append(args, year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// UpdateProfile updates a student's editable profile fields
func (r *StudentRepository) UpdateProfile(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, phone = $2, address = $3, parent_name = $4, parent_phone = $5, year = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.Phone, student.Address,
		student.ParentName, student.ParentPhone, student.Year, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SetApplicationStatus updates only the denormalized application status field
func (r *StudentRepository) SetApplicationStatus(ctx context.Context, studentID int64, status models.ApplicationStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students SET application_status = $1, updated_at = NOW() WHERE id = $2`,
		status, studentID)
	if err != nil {
		return fmt.Errorf("error updating student application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SetRoomAssignment writes the denormalized room mirror on the student record
func (r *StudentRepository) SetRoomAssignment(ctx context.Context, studentID, roomID int64, roomNumber, floor, hostelName string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET assigned_room_id = $1, room_number = $2, floor = $3, hostel_name = $4, updated_at = NOW()
		WHERE id = $5`,
		roomID, roomNumber, floor, hostelName, studentID)
	if err != nil {
		return fmt.Errorf("error assigning room to student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// ClearRoomAssignment removes the denormalized room mirror from the student record
func (r *StudentRepository) ClearRoomAssignment(ctx context.Context, studentID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET assigned_room_id = NULL, room_number = '', floor = '', hostel_name = '', updated_at = NOW()
		WHERE id = $1`,
		studentID)
	if err != nil {
		return fmt.Errorf("error clearing student room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SetBlacklisted flips the blacklist flag and records the remark
func (r *StudentRepository) SetBlacklisted(ctx context.Context, studentID int64, blacklisted bool, remarks string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students SET is_blacklisted = $1, remarks = $2, updated_at = NOW() WHERE id = $3`,
		blacklisted, remarks, studentID)
	if err != nil {
		return fmt.Errorf("error updating student blacklist flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SetRemarks overwrites the free-form remarks field
func (r *StudentRepository) SetRemarks(ctx context.Context, studentID int64, remarks string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students SET remarks = $1, updated_at = NOW() WHERE id = $2`,
		remarks, studentID)
	if err != nil {
		return fmt.Errorf("error updating student remarks: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a student record
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// CountAll returns the total number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// CountHoused returns the number of students currently assigned a room
func (r *StudentRepository) CountHoused(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE assigned_room_id IS NOT NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting housed students: %w", err)
	}
	return count, nil
}

// CountBlacklisted returns the number of blacklisted students
func (r *StudentRepository) CountBlacklisted(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE is_blacklisted = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting blacklisted students: %w", err)
	}
	return count, nil
}
