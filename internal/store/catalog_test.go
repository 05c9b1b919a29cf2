package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestCatalogCreate(t *testing.T) {
	db, mock := newMockDB(t)
	catalog := &CatalogStore{DB: db}

	mock.ExpectExec(regexp.QuoteMeta(queryInsertProduct)).
		WithArgs("Blue T-Shirt", "blue-t-shirt", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	product, err := catalog.Create("Blue T-Shirt", decimal.NewFromFloat(8.50), decimal.NewFromFloat(19.99))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if product.ID != 3 {
		t.Errorf("product ID = %d, want 3", product.ID)
	}
	if product.Slug != "blue-t-shirt" {
		t.Errorf("product slug = %q, want %q", product.Slug, "blue-t-shirt")
	}
	if !product.SellingPrice.Equal(decimal.NewFromFloat(19.99)) {
		t.Errorf("selling price = %s, want 19.99", product.SellingPrice)
	}
}

func TestCatalogCreateNegativePrice(t *testing.T) {
	// No SQL may run; the mock has no expectations and the cleanup
	// check would flag any statement.
	db, _ := newMockDB(t)
	catalog := &CatalogStore{DB: db}

	_, err := catalog.Create("Bad", decimal.NewFromFloat(-1), decimal.NewFromFloat(5))
	if !errors.Is(err, ErrNegativePrice) {
		t.Errorf("Create error = %v, want ErrNegativePrice", err)
	}

	_, err = catalog.Create("Bad", decimal.NewFromFloat(1), decimal.NewFromFloat(-5))
	if !errors.Is(err, ErrNegativePrice) {
		t.Errorf("Create error = %v, want ErrNegativePrice", err)
	}
}

func TestCatalogCreateZeroPriceAllowed(t *testing.T) {
	db, mock := newMockDB(t)
	catalog := &CatalogStore{DB: db}

	mock.ExpectExec(regexp.QuoteMeta(queryInsertProduct)).
		WillReturnResult(sqlmock.NewResult(4, 1))

	if _, err := catalog.Create("Freebie", decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("Create with zero prices failed: %v", err)
	}
}

func TestCatalogList(t *testing.T) {
	db, mock := newMockDB(t)
	catalog := &CatalogStore{DB: db}

	rows := sqlmock.NewRows([]string{"id", "name", "slug", "buying_price", "selling_price"}).
		AddRow(1, "Soda", "soda", "5.00", "10.00").
		AddRow(2, "Chips", "chips", "7.00", "12.50")
	mock.ExpectQuery(regexp.QuoteMeta(queryListProducts)).WillReturnRows(rows)

	products, err := catalog.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	if products[0].Name != "Soda" || products[1].Name != "Chips" {
		t.Errorf("unexpected products: %+v", products)
	}
	if !products[0].SellingPrice.Equal(decimal.NewFromInt(10)) {
		t.Errorf("selling price = %s, want 10", products[0].SellingPrice)
	}
}

func TestCatalogListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	catalog := &CatalogStore{DB: db}

	mock.ExpectQuery(regexp.QuoteMeta(queryListProducts)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "buying_price", "selling_price"}))

	products, err := catalog.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if products == nil {
		t.Error("List returned nil slice, want empty slice")
	}
	if len(products) != 0 {
		t.Errorf("len(products) = %d, want 0", len(products))
	}
}

func TestCatalogDelete(t *testing.T) {
	db, mock := newMockDB(t)
	catalog := &CatalogStore{DB: db}

	mock.ExpectExec(regexp.QuoteMeta(queryDeleteProduct)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := catalog.Delete(3); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestCatalogDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	catalog := &CatalogStore{DB: db}

	mock.ExpectExec(regexp.QuoteMeta(queryDeleteProduct)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := catalog.Delete(99); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Delete error = %v, want ErrProductNotFound", err)
	}
}
