package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Admin roles and access scopes. The string values are persisted and carried
// in session tokens, so they must not change.
const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"

	AccessDashboard      = "DASHBOARD"
	AccessProductUpload  = "PRODUCT_UPLOAD"
	AccessUserManagement = "USER_MANAGEMENT"
)

// ValidRole reports whether r is a known admin role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ValidAccess reports whether every scope in the list is known.
func ValidAccess(scopes []string) bool {
	for _, s := range scopes {
		switch s {
		case AccessDashboard, AccessProductUpload, AccessUserManagement:
		default:
			return false
		}
	}
	return true
}

// Admin mirrors the 'admins' table. Sign-in to the back office fails closed
// unless the authenticating email has a row here.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Access    []string  `json:"access"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminStore struct {
	db *sql.DB
}

func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

// CreateAdmin inserts a new back-office user and returns it with the
// generated ID.
func (s *AdminStore) CreateAdmin(ctx context.Context, a Admin) (*Admin, error) {
	query := `
		INSERT INTO admins (id, email, name, role, access)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	a.ID = uuid.New().String()
	err := s.db.QueryRowContext(ctx, query,
		a.ID, a.Email, a.Name, a.Role, pq.Array(a.Access),
	).Scan(&a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return &a, nil
}

// ListAdmins returns all back-office users, newest first.
func (s *AdminStore) ListAdmins(ctx context.Context) ([]Admin, error) {
	query := `
		SELECT id, email, name, role, access, created_at
		FROM admins
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []Admin
	for rows.Next() {
		var a Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.Role, pq.Array(&a.Access), &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// GetAdminByEmail looks up an admin during sign-in. Returns nil without an
// error when no row matches, which callers treat as "access denied".
func (s *AdminStore) GetAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	return s.getAdmin(ctx, `WHERE email = $1`, email)
}

// GetAdmin looks up an admin by ID (token refresh re-reads role and access
// from the row, so revoked scopes take effect on the next refresh).
func (s *AdminStore) GetAdmin(ctx context.Context, id string) (*Admin, error) {
	return s.getAdmin(ctx, `WHERE id = $1`, id)
}

func (s *AdminStore) getAdmin(ctx context.Context, where string, arg interface{}) (*Admin, error) {
	query := `
		SELECT id, email, name, role, access, created_at
		FROM admins
	` + where

	var a Admin
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.Name, &a.Role, pq.Array(&a.Access), &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &a, nil
}

// UpdateAdmin changes role and/or access. Empty role or nil access leaves
// the existing value in place.
func (s *AdminStore) UpdateAdmin(ctx context.Context, id, role string, access []string) (*Admin, error) {
	query := `
		UPDATE admins
		SET role = COALESCE(NULLIF($1, ''), role),
		    access = COALESCE($2::text[], access)
		WHERE id = $3
		RETURNING id, email, name, role, access, created_at
	`
	var accessArg interface{}
	if access != nil {
		accessArg = pq.Array(access)
	}

	var a Admin
	err := s.db.QueryRowContext(ctx, query, role, accessArg, id).Scan(
		&a.ID, &a.Email, &a.Name, &a.Role, pq.Array(&a.Access), &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin not found: %s", id)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return &a, nil
}

// DeleteAdmin removes a back-office user.
func (s *AdminStore) DeleteAdmin(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("admin not found: %s", id)
	}
	return nil
}
