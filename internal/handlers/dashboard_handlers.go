package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSalesPerProduct is the handler for GET /dashboard/sales-per-product.
// The view is derived fresh from the ledger on every call.
func (h *Handlers) GetSalesPerProduct(c *gin.Context) {
	stats, err := h.Dashboard.SalesPerProduct()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute sales per product"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetStockPerProduct is the handler for GET /dashboard/stock-per-product.
func (h *Handlers) GetStockPerProduct(c *gin.Context) {
	stats, err := h.Dashboard.StockPerProduct()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stock per product"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
