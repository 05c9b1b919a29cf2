package store

import (
	"database/sql"

	"github.com/mdan/duka-golang/internal/models"
)

// DashboardStore computes the aggregate views. Nothing here is cached or
// maintained incrementally; every call scans the ledger fresh, which is
// the right trade at these table sizes.
type DashboardStore struct {
	DB *sql.DB
}

// Both queries LEFT JOIN from products so a product with no activity
// still gets a row; COALESCE turns the missing sums into zeros.
const (
	querySalesPerProduct = `
		SELECT p.id, p.name,
			COALESCE(SUM(s.quantity), 0) AS total_quantity_sold,
			COALESCE(SUM(s.quantity * p.selling_price), 0) AS total_sales_amount
		FROM products p
		LEFT JOIN sales s ON s.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY p.id`

	queryStockPerProduct = `
		SELECT p.id, p.name,
			COALESCE(pur.purchased, 0) - COALESCE(sal.sold, 0) AS remaining_stock
		FROM products p
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS sold
			FROM sales
			GROUP BY product_id
		) sal ON sal.product_id = p.id
		LEFT JOIN (
			SELECT product_id, SUM(quantity) AS purchased
			FROM purchases
			GROUP BY product_id
		) pur ON pur.product_id = p.id
		ORDER BY p.id`
)

// SalesPerProduct sums quantity sold and sales amount
// (quantity x selling price) for every product in the catalog.
func (s *DashboardStore) SalesPerProduct() ([]models.SalesPerProduct, error) {
	rows, err := s.DB.Query(querySalesPerProduct)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.SalesPerProduct{}
	for rows.Next() {
		var row models.SalesPerProduct
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantity, &row.TotalSalesAmount); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// StockPerProduct reports purchased minus sold for every product. The
// result may be negative: selling without recorded purchases is allowed
// and the dashboard shows it rather than hiding it.
func (s *DashboardStore) StockPerProduct() ([]models.StockPerProduct, error) {
	rows, err := s.DB.Query(queryStockPerProduct)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.StockPerProduct{}
	for rows.Next() {
		var row models.StockPerProduct
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.RemainingStock); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
