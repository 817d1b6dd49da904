package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
)

// ApplicationRepository handles database operations for hostel applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

const applicationColumns = `
	id, student_id, hostel_id, student_name, student_pnr, student_year,
	branch, caste, date_of_birth, aadhar_card, admission_receipt,
	status, applied_on, approved_on, rejection_reason, remarks,
	room_number, floor, created_at, updated_at
`

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.StudentID,
		&app.HostelID,
		&app.StudentName,
		&app.StudentPNR,
		&app.StudentYear,
		&app.Branch,
		&app.Caste,
		&app.DateOfBirth,
		&app.AadharCard,
		&app.AdmissionReceipt,
		&app.Status,
		&app.AppliedOn,
		&app.ApprovedOn,
		&app.RejectionReason,
		&app.Remarks,
		&app.RoomNumber,
		&app.Floor,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create inserts a new application and fills in its generated ID
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications (student_id, hostel_id, student_name, student_pnr, student_year, branch, caste, date_of_birth, aadhar_card, admission_receipt, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, applied_on, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		app.StudentID, app.HostelID, app.StudentName, app.StudentPNR,
		app.StudentYear, app.Branch, app.Caste, app.DateOfBirth,
		app.AadharCard, app.AdmissionReceipt, app.Status,
	).Scan(&app.ID, &app.AppliedOn, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID, returning nil when no row matches
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// GetByStudentID retrieves the single application of a student
func (r *ApplicationRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE student_id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, studentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// GetByStudentPNR retrieves an application through the student's PNR snapshot
func (r *ApplicationRepository) GetByStudentPNR(ctx context.Context, pnr string) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE student_pnr = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, pnr))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// GetAll retrieves applications filtered by status, year and hostel
func (r *ApplicationRepository) GetAll(ctx context.Context, status, year string, hostelID int64) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE 1=1`
	args := []interface{}{}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if year != "" {
		args = append(args, year)
		query += fmt.Sprintf(" AND student_year = $%d", len(args))
	}
	if hostelID != 0 {
		args = append(args, hostelID)
		query += fmt.Sprintf(" AND hostel_id = $%d", len(args))
	}
	query += " ORDER BY applied_on DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// Approve marks the application approved and records the assigned room
func (r *ApplicationRepository) Approve(ctx context.Context, id int64, roomNumber, floor string, approvedOn time.Time) error {
	query := `
		UPDATE applications
		SET status = $1, room_number = $2, floor = $3, approved_on = $4, rejection_reason = '', updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		models.StatusApproved, roomNumber, floor, approvedOn, id)
	if err != nil {
		return fmt.Errorf("error approving application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Reject marks the application rejected with the given reason
func (r *ApplicationRepository) Reject(ctx context.Context, id int64, reason string) error {
	query := `
		UPDATE applications
		SET status = $1, rejection_reason = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, models.StatusRejected, reason, id)
	if err != nil {
		return fmt.Errorf("error rejecting application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SetStatus updates the application status field only
func (r *ApplicationRepository) SetStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Disallocate clears the room mirror and records the eviction remark
func (r *ApplicationRepository) Disallocate(ctx context.Context, id int64, remarks string) error {
	query := `
		UPDATE applications
		SET status = $1, room_number = '', floor = '', approved_on = NULL, remarks = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, models.StatusDisallocated, remarks, id)
	if err != nil {
		return fmt.Errorf("error disallocating application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SetRoomMirror rewrites the denormalized room fields on an approved
// application. Cross-hostel moves change the hostel as well.
func (r *ApplicationRepository) SetRoomMirror(ctx context.Context, id, hostelID int64, roomNumber, floor string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE applications SET hostel_id = $1, room_number = $2, floor = $3, updated_at = NOW() WHERE id = $4`,
		hostelID, roomNumber, floor, id)
	if err != nil {
		return fmt.Errorf("error updating application room: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes an application record
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// DeleteByHostelID removes all applications targeting a hostel
func (r *ApplicationRepository) DeleteByHostelID(ctx context.Context, hostelID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM applications WHERE hostel_id = $1`, hostelID)
	if err != nil {
		return fmt.Errorf("error deleting hostel applications: %w", err)
	}

	return nil
}

// CountByStatus returns application counts broken down by status
func (r *ApplicationRepository) CountByStatus(ctx context.Context) (*dto.ApplicationStatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'APPROVED'),
			COUNT(*) FILTER (WHERE status = 'REJECTED'),
			COUNT(*) FILTER (WHERE status = 'CANCELLED'),
			COUNT(*) FILTER (WHERE status = 'DISALLOCATED')
		FROM applications
	`

	var counts dto.ApplicationStatusCounts
	err := r.db.QueryRow(ctx, query).Scan(
		&counts.Pending,
		&counts.Approved,
		&counts.Rejected,
		&counts.Cancelled,
		&counts.Disallocated,
	)
	if err != nil {
		return nil, fmt.Errorf("error counting applications: %w", err)
	}

	return &counts, nil
}
