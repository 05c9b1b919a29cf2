package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdan/duka-golang/internal/handlers"
	"github.com/mdan/duka-golang/internal/middleware"
)

// CORSMiddleware allows the local frontend to talk to the API.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Reply to the browser's preflight check directly.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	// --- Root (Public) ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"duka-api": "1.0"})
	})

	// --- Auth Routes (Public) ---
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	// --- Protected Routes (Login Required) ---
	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware(h.Users))
	{
		// Catalog
		authorized.GET("/products", h.GetProducts)
		authorized.POST("/products", h.CreateProduct)
		authorized.DELETE("/products/:id", h.DeleteProduct)

		// Ledger
		authorized.GET("/sales", h.GetSales)
		authorized.POST("/sales", h.CreateSale)
		authorized.GET("/purchases", h.GetPurchases)
		authorized.POST("/purchases", h.CreatePurchase)

		// Dashboard
		authorized.GET("/dashboard/sales-per-product", h.GetSalesPerProduct)
		authorized.GET("/dashboard/stock-per-product", h.GetStockPerProduct)
	}

	return router
}
