package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product categories persisted on product rows.
const CategoryNeonSign = "NEON_SIGN"

// Product mirrors the 'products' table, plus the per-product counts the
// storefront listing shows.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	NeonSigns   []NeonSign `json:"neonSigns"`

	OrderItemCount int `json:"orderItemCount"`
	ReviewCount    int `json:"reviewCount"`
}

type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `
	p.id, p.name, p.description, p.category, p.is_active, p.created_at,
	(SELECT COUNT(*) FROM order_items oi WHERE oi.product_id = p.id),
	(SELECT COUNT(*) FROM reviews r WHERE r.product_id = p.id)`

// ListProducts returns products newest first, optionally filtered by
// category. Sign configurations are attached by the caller.
func (s *ProductStore) ListProducts(ctx context.Context, category string) ([]Product, error) {
	query := `SELECT` + productColumns + ` FROM products p ORDER BY p.created_at DESC`
	args := []interface{}{}
	if category != "" {
		query = `SELECT` + productColumns + ` FROM products p WHERE p.category = $1 ORDER BY p.created_at DESC`
		args = append(args, category)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// GetProduct fetches one product by ID. Returns nil without an error when
// the product does not exist.
func (s *ProductStore) GetProduct(ctx context.Context, id string) (*Product, error) {
	query := `SELECT` + productColumns + ` FROM products p WHERE p.id = $1`

	row := s.db.QueryRowContext(ctx, query, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// CreateWithSign inserts a product and its neon sign configuration in one
// transaction, so a failed config insert never leaves an orphan product.
func (s *ProductStore) CreateWithSign(ctx context.Context, p Product, sign NeonSign) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	productID := uuid.New().String()
	queryProduct := `
		INSERT INTO products (id, name, description, category, is_active)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, queryProduct, productID, p.Name, p.Description, p.Category, true)
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}

	querySign := `
		INSERT INTO neon_signs (id, product_id, min_width, min_height, base_price,
			discount_type, discount_value, sign_type, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.ExecContext(ctx, querySign,
		uuid.New().String(), productID,
		sign.MinWidth, sign.MinHeight, sign.BasePrice,
		nullString(string(sign.DiscountType)), nullFloat(sign.DiscountValue),
		sign.SignType, nullString(sign.ImageURL), true,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert neon sign config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return productID, nil
}

// UpdateProduct updates the editable product fields.
func (s *ProductStore) UpdateProduct(ctx context.Context, id, name, description string) error {
	query := `UPDATE products SET name = $1, description = $2 WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, name, description, id)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("product not found: %s", id)
	}
	return nil
}

// SetActive toggles a product's visibility.
func (s *ProductStore) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE products SET is_active = $1 WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update product status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("product not found: %s", id)
	}
	return nil
}

// AttachSigns fills in each product's sign configurations with one query
// instead of one per product.
func (s *ProductStore) AttachSigns(ctx context.Context, signs *SignStore, products []Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	byProduct, err := signs.ListByProducts(ctx, ids)
	if err != nil {
		return err
	}
	for i := range products {
		products[i].NeonSigns = byProduct[products[i].ID]
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var p Product
	var description sql.NullString
	err := row.Scan(
		&p.ID, &p.Name, &description, &p.Category, &p.IsActive, &p.CreatedAt,
		&p.OrderItemCount, &p.ReviewCount,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		p.Description = description.String
	}
	return &p, nil
}

// nullString maps "" to NULL so empty optional fields are not stored as
// empty strings.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}
