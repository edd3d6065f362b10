package adminController

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/catalog"
	"github.com/upparakash/AspireBrandApi/controllers"
	"github.com/upparakash/AspireBrandApi/models"
)

type AdminService interface {
	Register(ctx context.Context, in catalog.AdminRegisterInput) (*models.Admin, error)
	Login(ctx context.Context, email, password string) (string, *models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
}

type LoginInput struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// POST /api/auth/register
func Register(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalog.AdminRegisterInput
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		admin, err := svc.Register(c.Request.Context(), in)
		if errors.Is(err, apperror.ErrDuplicateKey) {
			controllers.FailWith(c, http.StatusConflict, err)
			return
		}
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		log.Printf("✅ Admin %d created", admin.ID)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Admin created successfully",
			"data":    admin,
		})
	}
}

// POST /api/auth/login
func Login(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in LoginInput
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		token, admin, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"data":    admin,
		})
	}
}

func GetAllAdmins(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins, err := svc.List(c.Request.Context())
		if err != nil {
			log.Println("❌ Failed to fetch admins:", err)
			controllers.Fail(c, err)
			return
		}

		c.JSON(http.StatusOK, admins)
	}
}
