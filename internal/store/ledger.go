package store

import (
	"database/sql"
	"time"

	"github.com/mdan/duka-golang/internal/models"
)

// LedgerStore owns the append-only 'sales' and 'purchases' tables.
// Rows are never updated or deleted here; the only way one disappears is
// the cascade when its product is removed from the catalog.
type LedgerStore struct {
	DB *sql.DB
}

const (
	queryProductExists = `SELECT EXISTS(SELECT 1 FROM products WHERE id = ?)`

	queryInsertSale = `
		INSERT INTO sales (product_id, quantity, created_at)
		VALUES (?, ?, ?)`

	queryInsertPurchase = `
		INSERT INTO purchases (product_id, quantity, created_at)
		VALUES (?, ?, ?)`

	queryListSales = `
		SELECT s.id, s.product_id, s.quantity, s.created_at,
			p.id, p.name, p.slug, p.buying_price, p.selling_price
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.id`

	queryListPurchases = `
		SELECT pu.id, pu.product_id, pu.quantity, pu.created_at,
			p.id, p.name, p.slug, p.buying_price, p.selling_price
		FROM purchases pu
		JOIN products p ON p.id = pu.product_id
		ORDER BY pu.id`
)

// RecordSale appends one sale. The quantity check happens before the
// transaction starts so a bad request never touches the ledger; the
// deferred rollback releases the transaction on every failure path.
func (s *LedgerStore) RecordSale(productID, quantity int64) (*models.Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(queryProductExists, productID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	sale := &models.Sale{
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(), // timestamp assigned at commit time
	}

	result, err := tx.Exec(queryInsertSale, sale.ProductID, sale.Quantity, sale.CreatedAt)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	sale.ID = id

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return sale, nil
}

// RecordPurchase appends one purchase, same contract as RecordSale.
func (s *LedgerStore) RecordPurchase(productID, quantity int64) (*models.Purchase, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(queryProductExists, productID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	purchase := &models.Purchase{
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}

	result, err := tx.Exec(queryInsertPurchase, purchase.ProductID, purchase.Quantity, purchase.CreatedAt)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	purchase.ID = id

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return purchase, nil
}

// ListSales returns every sale with its product attached for display.
func (s *LedgerStore) ListSales() ([]models.Sale, error) {
	rows, err := s.DB.Query(queryListSales)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var sale models.Sale
		var product models.Product
		if err := rows.Scan(
			&sale.ID, &sale.ProductID, &sale.Quantity, &sale.CreatedAt,
			&product.ID, &product.Name, &product.Slug, &product.BuyingPrice, &product.SellingPrice,
		); err != nil {
			return nil, err
		}
		sale.Product = &product
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}

// ListPurchases mirrors ListSales for the purchases table.
func (s *LedgerStore) ListPurchases() ([]models.Purchase, error) {
	rows, err := s.DB.Query(queryListPurchases)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := []models.Purchase{}
	for rows.Next() {
		var purchase models.Purchase
		var product models.Product
		if err := rows.Scan(
			&purchase.ID, &purchase.ProductID, &purchase.Quantity, &purchase.CreatedAt,
			&product.ID, &product.Name, &product.Slug, &product.BuyingPrice, &product.SellingPrice,
		); err != nil {
			return nil, err
		}
		purchase.Product = &product
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return purchases, nil
}
