package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
)

// AdminRepository handles database operations for hostel staff accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

const adminColumns = `
	id, name, email, admin_id, password, phone, role, is_active, created_at, updated_at
`

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var admin models.Admin
	err := row.Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.AdminID,
		&admin.Password,
		&admin.Phone,
		&admin.Role,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create inserts a new admin and fills in its generated ID
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (name, email, admin_id, password, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		admin.Name, admin.Email, admin.AdminID, admin.Password, admin.Phone, admin.Role,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetByID retrieves an admin by ID, returning nil when no row matches
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// GetByIdentifier retrieves an admin by email or staff code
func (r *AdminRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1 OR admin_id = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, identifier))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// ExistsByEmailOrAdminID checks whether an admin with the given email or staff code exists
func (r *AdminRepository) ExistsByEmailOrAdminID(ctx context.Context, email, adminID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1 OR admin_id = $2)`,
		email, adminID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all admins, optionally filtered by role
func (r *AdminRepository) GetAll(ctx context.Context, role string) ([]*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins`
	args := []interface{}{}

	if role != "" {
		query += ` WHERE role = $1`
		args = append(args, role)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

// Update updates an admin's profile fields
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	query := `
		UPDATE admins
		SET name = $1, phone = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, admin.Name, admin.Phone, admin.IsActive, admin.ID)
	if err != nil {
		return fmt.Errorf("error updating admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes an admin record
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// HasSuperadmin reports whether any superadmin account exists yet
func (r *AdminRepository) HasSuperadmin(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admins WHERE role = $1)`,
		models.RoleSuperadmin).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking superadmin existence: %w", err)
	}

	return exists, nil
}
