package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Review mirrors the 'reviews' table.
type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	CustomerID string    `json:"customerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReviewStore struct {
	db *sql.DB
}

func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// CreateReview saves a customer review and returns it with the generated ID.
func (s *ReviewStore) CreateReview(ctx context.Context, r Review) (*Review, error) {
	query := `
		INSERT INTO reviews (id, product_id, customer_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	r.ID = uuid.New().String()
	err := s.db.QueryRowContext(ctx, query,
		r.ID, r.ProductID, r.CustomerID, r.Rating, nullString(r.Comment),
	).Scan(&r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &r, nil
}

// ListByProduct returns a product's reviews, newest first.
func (s *ReviewStore) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	query := `
		SELECT id, product_id, customer_id, rating, comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var r Review
		var comment sql.NullString
		if err := rows.Scan(&r.ID, &r.ProductID, &r.CustomerID, &r.Rating, &comment, &r.CreatedAt); err != nil {
			return nil, err
		}
		if comment.Valid {
			r.Comment = comment.String
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
