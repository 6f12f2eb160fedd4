package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Customer mirrors the 'customers' table. Rows are created lazily on first
// Google sign-in; there is no password column anywhere in this system.
type Customer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CustomerStore struct {
	db *sql.DB
}

func NewCustomerStore(db *sql.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

// UpsertCustomer creates the customer on first sign-in, or refreshes the
// display name on a returning one, and returns the row either way.
func (s *CustomerStore) UpsertCustomer(ctx context.Context, email, name string) (*Customer, error) {
	query := `
		INSERT INTO customers (id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email)
		DO UPDATE SET name = EXCLUDED.name
		RETURNING id, email, name, created_at
	`
	var c Customer
	err := s.db.QueryRowContext(ctx, query, uuid.New().String(), email, name).Scan(
		&c.ID, &c.Email, &c.Name, &c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return &c, nil
}

// GetCustomer fetches a customer by ID. Returns nil without an error when
// none exists.
func (s *CustomerStore) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	query := `SELECT id, email, name, created_at FROM customers WHERE id = $1`

	var c Customer
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Email, &c.Name, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}
