package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kartikay_signage/internal/store"
)

var productRowColumns = []string{
	"id", "name", "description", "category", "is_active", "created_at",
	"order_item_count", "review_count",
}

var signRowColumns = []string{
	"id", "product_id", "min_width", "min_height", "base_price",
	"discount_type", "discount_value", "sign_type", "image_url", "is_active", "created_at",
}

func TestListProductsWithSigns(t *testing.T) {
	env := newTestEnv(t)

	productRows := sqlmock.NewRows(productRowColumns).
		AddRow("p-1", "Open Sign", "glows", store.CategoryNeonSign, true, time.Now(), 0, 2)
	env.mock.ExpectQuery("FROM products").WithArgs(store.CategoryNeonSign).WillReturnRows(productRows)

	signRows := sqlmock.NewRows(signRowColumns).
		AddRow("s-1", "p-1", 24.0, 12.0, 2880.0, nil, nil, "DEFAULT", nil, true, time.Now())
	env.mock.ExpectQuery("FROM neon_signs").WithArgs(pq.Array([]string{"p-1"})).WillReturnRows(signRows)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=NEON_SIGN", nil)
	w := env.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool            `json:"success"`
		Products []store.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Open Sign", resp.Products[0].Name)
	assert.Equal(t, 2, resp.Products[0].ReviewCount)
	require.Len(t, resp.Products[0].NeonSigns, 1)
	assert.Equal(t, 24.0, resp.Products[0].NeonSigns[0].MinWidth)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.mock.ExpectQuery("FROM products").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	w := env.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	productRows := sqlmock.NewRows(productRowColumns).
		AddRow("p-1", "Open Sign", nil, store.CategoryNeonSign, true, time.Now(), 1, 0)
	env.mock.ExpectQuery("FROM products").WithArgs("p-1").WillReturnRows(productRows)
	env.mock.ExpectQuery("FROM neon_signs").
		WithArgs(pq.Array([]string{"p-1"})).
		WillReturnRows(sqlmock.NewRows(signRowColumns))

	req := httptest.NewRequest(http.MethodGet, "/api/products/p-1", nil)
	w := env.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Product store.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "p-1", resp.Product.ID)
	assert.Empty(t, resp.Product.Description)
}
