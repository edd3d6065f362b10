package userControllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/catalog"
	"github.com/upparakash/AspireBrandApi/controllers"
	"github.com/upparakash/AspireBrandApi/middleware"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
)

// ProfileField is the multipart field of the profile picture.
const ProfileField = "profile"

type CustomerService interface {
	Register(ctx context.Context, in catalog.RegisterInput, uploads storage.Uploads) (*models.Customer, error)
	Login(ctx context.Context, email, password string) (string, *models.Customer, error)
	Profile(ctx context.Context, id uint) (*models.Customer, error)
	UpdateProfile(ctx context.Context, id uint, in catalog.ProfileInput, uploads storage.Uploads) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

type LoginInput struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// failCustomer reports an already-registered email or phone as 409.
func failCustomer(c *gin.Context, err error) {
	if errors.Is(err, apperror.ErrDuplicateKey) {
		controllers.FailWith(c, http.StatusConflict, err)
		return
	}
	controllers.Fail(c, err)
}

// POST /api/customers/register
func Register(svc CustomerService, janitor catalog.Discarder) gin.HandlerFunc {
	return func(c *gin.Context) {
		uploads := storage.UploadsFrom(c)

		var in catalog.RegisterInput
		if err := c.ShouldBind(&in); err != nil {
			janitor.Discard(c.Request.Context(), uploads.URLs()...)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		customer, err := svc.Register(c.Request.Context(), in, uploads)
		if err != nil {
			failCustomer(c, err)
			return
		}

		log.Printf("✅ Customer %d registered", customer.ID)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Customer registered successfully",
			"data":    customer,
		})
	}
}

// POST /api/customers/login
func Login(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in LoginInput
		if err := c.ShouldBind(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		token, customer, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"data":    customer,
		})
	}
}

// GET /api/customers/profile
func GetProfile(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		customer, err := svc.Profile(c.Request.Context(), id)
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// PUT /api/customers/profile
func UpdateProfile(svc CustomerService, janitor catalog.Discarder) gin.HandlerFunc {
	return func(c *gin.Context) {
		uploads := storage.UploadsFrom(c)

		id, ok := middleware.CustomerID(c)
		if !ok {
			janitor.Discard(c.Request.Context(), uploads.URLs()...)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		var in catalog.ProfileInput
		if err := c.ShouldBind(&in); err != nil {
			janitor.Discard(c.Request.Context(), uploads.URLs()...)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		customer, err := svc.UpdateProfile(c.Request.Context(), id, in, uploads)
		if err != nil {
			failCustomer(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Profile updated successfully",
			"data":    customer,
		})
	}
}

// GET /api/customers
func GetAllCustomers(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := svc.List(c.Request.Context())
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}
