package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes is the single entry-point that wires up every /api group.
func SetupRoutes(r *gin.Engine, s *Services) {
	r.GET("/healthz", func(c *gin.Context) {
		if s.Ping != nil {
			if err := s.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "Database unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// 1️⃣ Admin accounts
	SetupAdminRoutes(api, s)

	// 2️⃣ Catalog (reads public, writes for admins)
	SetupCatalogRoutes(api, s)

	// 3️⃣ Customers (JWT for profile)
	SetupCustomerRoutes(api, s)

	// 4️⃣ Orders + websocket feed
	SetupOrderRoutes(api, s)

	// 5️⃣ Razorpay
	SetupPaymentRoutes(api, s)

	// 6️⃣ Stock
	SetupStockRoutes(api, s)
}
