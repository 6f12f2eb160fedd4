package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"kartikay_signage/pricing"
)

// NeonSign mirrors the 'neon_signs' table: the pricing configuration of a
// catalog sign. Dimensions are stored in inches; the admin form collects
// feet and the handler converts before it gets here.
type NeonSign struct {
	ID            string               `json:"id"`
	ProductID     string               `json:"productId"`
	MinWidth      float64              `json:"minWidth"`
	MinHeight     float64              `json:"minHeight"`
	BasePrice     float64              `json:"basePrice"`
	DiscountType  pricing.DiscountType `json:"discountType"`
	DiscountValue float64              `json:"discountValue"`
	SignType      string               `json:"type"`
	ImageURL      string               `json:"imageUrl"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type SignStore struct {
	db *sql.DB
}

func NewSignStore(db *sql.DB) *SignStore {
	return &SignStore{db: db}
}

// ListByProducts loads the sign configurations for a set of products in one
// round trip, keyed by product ID.
func (s *SignStore) ListByProducts(ctx context.Context, productIDs []string) (map[string][]NeonSign, error) {
	query := `
		SELECT id, product_id, min_width, min_height, base_price,
		       discount_type, discount_value, sign_type, image_url, is_active, created_at
		FROM neon_signs
		WHERE product_id = ANY($1)
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list neon signs: %w", err)
	}
	defer rows.Close()

	byProduct := make(map[string][]NeonSign)
	for rows.Next() {
		sign, err := scanSign(rows)
		if err != nil {
			return nil, err
		}
		byProduct[sign.ProductID] = append(byProduct[sign.ProductID], *sign)
	}
	return byProduct, rows.Err()
}

// UpdateByProduct rewrites the pricing configuration of every sign attached
// to a product (the admin edit form works per product).
func (s *SignStore) UpdateByProduct(ctx context.Context, productID string, sign NeonSign) error {
	query := `
		UPDATE neon_signs
		SET min_width = $1, min_height = $2, base_price = $3,
		    discount_type = $4, discount_value = $5, sign_type = $6, image_url = $7
		WHERE product_id = $8
	`
	result, err := s.db.ExecContext(ctx, query,
		sign.MinWidth, sign.MinHeight, sign.BasePrice,
		nullString(string(sign.DiscountType)), nullFloat(sign.DiscountValue),
		sign.SignType, nullString(sign.ImageURL), productID,
	)
	if err != nil {
		return fmt.Errorf("failed to update neon sign config: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("neon sign config not found for product: %s", productID)
	}
	return nil
}

// SetActiveByProduct toggles sign visibility together with the product.
func (s *SignStore) SetActiveByProduct(ctx context.Context, productID string, active bool) error {
	query := `UPDATE neon_signs SET is_active = $1 WHERE product_id = $2`
	_, err := s.db.ExecContext(ctx, query, active, productID)
	if err != nil {
		return fmt.Errorf("failed to update neon sign status: %w", err)
	}
	return nil
}

func scanSign(row rowScanner) (*NeonSign, error) {
	var sign NeonSign
	var discountType, imageURL sql.NullString
	var discountValue sql.NullFloat64

	err := row.Scan(
		&sign.ID, &sign.ProductID, &sign.MinWidth, &sign.MinHeight, &sign.BasePrice,
		&discountType, &discountValue, &sign.SignType, &imageURL, &sign.IsActive, &sign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if discountType.Valid {
		sign.DiscountType = pricing.DiscountType(discountType.String)
	}
	if discountValue.Valid {
		sign.DiscountValue = discountValue.Float64
	}
	if imageURL.Valid {
		sign.ImageURL = imageURL.String
	}
	return &sign, nil
}
