package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kartikay_signage/pricing"
)

func newProductStores(t *testing.T) (*ProductStore, *SignStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProductStore(db), NewSignStore(db), mock
}

var productRowColumns = []string{
	"id", "name", "description", "category", "is_active", "created_at",
	"order_item_count", "review_count",
}

func TestListProductsByCategory(t *testing.T) {
	products, _, mock := newProductStores(t)

	rows := sqlmock.NewRows(productRowColumns).
		AddRow("p-1", "Open Sign", "glows", CategoryNeonSign, true, time.Now(), 3, 2)
	mock.ExpectQuery("FROM products").WithArgs(CategoryNeonSign).WillReturnRows(rows)

	got, err := products.ListProducts(context.Background(), CategoryNeonSign)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Open Sign", got[0].Name)
	assert.Equal(t, 3, got[0].OrderItemCount)
	assert.Equal(t, 2, got[0].ReviewCount)
}

func TestGetProductNotFound(t *testing.T) {
	products, _, mock := newProductStores(t)

	mock.ExpectQuery("FROM products").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	p, err := products.GetProduct(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetProductNullDescription(t *testing.T) {
	products, _, mock := newProductStores(t)

	rows := sqlmock.NewRows(productRowColumns).
		AddRow("p-1", "Open Sign", nil, CategoryNeonSign, true, time.Now(), 0, 0)
	mock.ExpectQuery("FROM products").WithArgs("p-1").WillReturnRows(rows)

	p, err := products.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Empty(t, p.Description)
}

func TestCreateWithSignCommits(t *testing.T) {
	products, _, mock := newProductStores(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO products").
		WithArgs(sqlmock.AnyArg(), "Open Sign", "glows", CategoryNeonSign, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO neon_signs").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := products.CreateWithSign(context.Background(),
		Product{Name: "Open Sign", Description: "glows", Category: CategoryNeonSign},
		NeonSign{MinWidth: 24, MinHeight: 16, BasePrice: 5000, SignType: "DEFAULT"},
	)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithSignRollsBackOnConfigFailure(t *testing.T) {
	products, _, mock := newProductStores(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO neon_signs").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := products.CreateWithSign(context.Background(),
		Product{Name: "Open Sign", Category: CategoryNeonSign},
		NeonSign{MinWidth: 24, MinHeight: 16, BasePrice: 5000},
	)
	assert.ErrorContains(t, err, "failed to insert neon sign config")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductNotFound(t *testing.T) {
	products, _, mock := newProductStores(t)

	mock.ExpectExec("UPDATE products").WithArgs("New", "desc", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := products.UpdateProduct(context.Background(), "missing", "New", "desc")
	assert.ErrorContains(t, err, "product not found")
}

func TestAttachSigns(t *testing.T) {
	products, signs, mock := newProductStores(t)

	signRows := sqlmock.NewRows([]string{
		"id", "product_id", "min_width", "min_height", "base_price",
		"discount_type", "discount_value", "sign_type", "image_url", "is_active", "created_at",
	}).
		AddRow("s-1", "p-1", 24.0, 16.0, 5000.0, string(pricing.DiscountPercentage), 10.0, "DEFAULT", nil, true, time.Now()).
		AddRow("s-2", "p-2", 12.0, 8.0, 2500.0, nil, nil, "DEFAULT", "https://example.com/a.png", true, time.Now())
	mock.ExpectQuery("FROM neon_signs").
		WithArgs(pq.Array([]string{"p-1", "p-2"})).
		WillReturnRows(signRows)

	list := []Product{{ID: "p-1"}, {ID: "p-2"}}
	require.NoError(t, products.AttachSigns(context.Background(), signs, list))

	require.Len(t, list[0].NeonSigns, 1)
	assert.Equal(t, pricing.DiscountPercentage, list[0].NeonSigns[0].DiscountType)
	require.Len(t, list[1].NeonSigns, 1)
	assert.Equal(t, pricing.DiscountNone, list[1].NeonSigns[0].DiscountType)
	assert.Equal(t, "https://example.com/a.png", list[1].NeonSigns[0].ImageURL)
}

func TestUpdateSignByProductNotFound(t *testing.T) {
	_, signs, mock := newProductStores(t)

	mock.ExpectExec("UPDATE neon_signs").WillReturnResult(sqlmock.NewResult(0, 0))

	err := signs.UpdateByProduct(context.Background(), "missing", NeonSign{MinWidth: 24, MinHeight: 16, BasePrice: 100})
	assert.ErrorContains(t, err, "neon sign config not found")
}
