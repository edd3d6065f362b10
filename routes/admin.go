package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/upparakash/AspireBrandApi/controllers/admin"
)

// SetupAdminRoutes registers /api/auth/*. New admins are created by an
// existing admin (or with the API key); the first one can also be created
// with `aspire create-admin`.
func SetupAdminRoutes(api *gin.RouterGroup, s *Services) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", adminController.Login(s.Admins))
		authGroup.POST("/register", s.RequireAdmin(), adminController.Register(s.Admins))
		authGroup.GET("/admins", s.RequireAdmin(), adminController.GetAllAdmins(s.Admins))
	}
}
