package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdan/duka-golang/internal/store"
)

// RecordEntryInput is shared by sales and purchases; the two endpoints
// accept the same body shape.
type RecordEntryInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required"`
}

// ledgerError maps the ledger store's failures onto HTTP statuses.
func ledgerError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, store.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// CreateSale is the handler for POST /sales.
func (h *Handlers) CreateSale(c *gin.Context) {
	var input RecordEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := h.Ledger.RecordSale(input.ProductID, input.Quantity)
	if err != nil {
		ledgerError(c, err, "Failed to record sale")
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// GetSales is the handler for GET /sales.
func (h *Handlers) GetSales(c *gin.Context) {
	sales, err := h.Ledger.ListSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}

// CreatePurchase is the handler for POST /purchases.
func (h *Handlers) CreatePurchase(c *gin.Context) {
	var input RecordEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchase, err := h.Ledger.RecordPurchase(input.ProductID, input.Quantity)
	if err != nil {
		ledgerError(c, err, "Failed to record purchase")
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

// GetPurchases is the handler for GET /purchases.
func (h *Handlers) GetPurchases(c *gin.Context) {
	purchases, err := h.Ledger.ListPurchases()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, purchases)
}
