package store

import (
	"database/sql"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"github.com/mdan/duka-golang/internal/models"
)

// CatalogStore owns the 'products' table. Product names are not unique;
// deleting a product takes its sales and purchases with it (FK cascade).
type CatalogStore struct {
	DB *sql.DB
}

const (
	queryInsertProduct = `
		INSERT INTO products (name, slug, buying_price, selling_price)
		VALUES (?, ?, ?, ?)`

	queryListProducts = `
		SELECT id, name, slug, buying_price, selling_price
		FROM products
		ORDER BY id`

	queryDeleteProduct = `DELETE FROM products WHERE id = ?`
)

// Create inserts a new product. Negative prices are rejected before any
// SQL runs.
func (s *CatalogStore) Create(name string, buyingPrice, sellingPrice decimal.Decimal) (*models.Product, error) {
	if buyingPrice.IsNegative() || sellingPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	product := &models.Product{
		Name:         name,
		Slug:         slug.Make(name),
		BuyingPrice:  buyingPrice,
		SellingPrice: sellingPrice,
	}

	result, err := s.DB.Exec(queryInsertProduct, product.Name, product.Slug, product.BuyingPrice, product.SellingPrice)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	product.ID = id

	return product, nil
}

// List returns every product, stable by id.
func (s *CatalogStore) List() ([]models.Product, error) {
	rows, err := s.DB.Query(queryListProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.BuyingPrice, &p.SellingPrice); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// Delete removes a product and, through the cascade, every sale and
// purchase that references it.
func (s *CatalogStore) Delete(id int64) error {
	result, err := s.DB.Exec(queryDeleteProduct, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
