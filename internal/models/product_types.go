package models

import "github.com/shopspring/decimal"

func init() {
	// Prices serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a row in the 'products' table. Prices are DECIMAL(12,2)
// columns; decimal.Decimal keeps the arithmetic exact all the way to the
// dashboard sums.
type Product struct {
	ID           int64           `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	Slug         string          `json:"slug" db:"slug"`
	BuyingPrice  decimal.Decimal `json:"buying_price" db:"buying_price"`
	SellingPrice decimal.Decimal `json:"selling_price" db:"selling_price"`
}
