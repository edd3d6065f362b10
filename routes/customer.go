package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/upparakash/AspireBrandApi/controllers/user"
	"github.com/upparakash/AspireBrandApi/middleware"
	"github.com/upparakash/AspireBrandApi/storage"
)

// SetupCustomerRoutes registers /api/customers/*.
func SetupCustomerRoutes(api *gin.RouterGroup, s *Services) {
	upload := s.Uploader.Fields(storage.FolderCustomers, userControllers.ProfileField)

	customers := api.Group("/customers")
	{
		customers.POST("/register", upload, userControllers.Register(s.Customers, s.Janitor))
		customers.POST("/login", userControllers.Login(s.Customers))

		customers.GET("/profile", middleware.ValidateToken(s.Tokens), userControllers.GetProfile(s.Customers))
		customers.PUT("/profile", middleware.ValidateToken(s.Tokens), upload, userControllers.UpdateProfile(s.Customers, s.Janitor))

		customers.GET("", s.RequireAdmin(), userControllers.GetAllCustomers(s.Customers))
	}
}
