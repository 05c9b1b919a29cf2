package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an append-only row in the 'sales' table. Product is filled in
// by the list queries (JOIN on products) for display.
type Sale struct {
	ID        int64     `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Quantity  int64     `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Product *Product `json:"product,omitempty"`
}

// Purchase mirrors Sale exactly; the two tables share a shape on purpose.
type Purchase struct {
	ID        int64     `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Quantity  int64     `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Product *Product `json:"product,omitempty"`
}

// SalesPerProduct is one row of the sales dashboard. Products with no
// sales still get a row with zero totals.
type SalesPerProduct struct {
	ProductID        int64           `json:"product_id"`
	ProductName      string          `json:"product_name"`
	TotalQuantity    int64           `json:"total_quantity_sold"`
	TotalSalesAmount decimal.Decimal `json:"total_sales_amount"`
}

// StockPerProduct is one row of the stock dashboard. Remaining stock is
// purchased minus sold and may legitimately be negative.
type StockPerProduct struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	RemainingStock int64  `json:"remaining_stock"`
}
