package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/auth"
	"github.com/upparakash/AspireBrandApi/catalog"
	"github.com/upparakash/AspireBrandApi/config"
	"github.com/upparakash/AspireBrandApi/inventory"
	"github.com/upparakash/AspireBrandApi/middleware"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/notify"
	"github.com/upparakash/AspireBrandApi/orders"
	"github.com/upparakash/AspireBrandApi/payment"
	"github.com/upparakash/AspireBrandApi/storage"
	"gorm.io/gorm"
)

// Services is everything the HTTP layer calls into.
type Services struct {
	Products      *catalog.Products
	Categories    *catalog.Categories
	Subcategories *catalog.Subcategories
	Banners       *catalog.Banners
	Customers     *catalog.Customers
	Admins        *catalog.Admins
	Orders        *orders.Service
	Payments      *payment.Razorpay
	Stock         *inventory.Store
	Hub           *notify.Hub
	Uploader      *storage.Uploader
	Janitor       *storage.Janitor
	Tokens        *auth.Tokens

	// AdminAPIKey is accepted on X-API-KEY in place of an admin token.
	AdminAPIKey string
	Currency    string
	// Ping reports whether the database is reachable.
	Ping func(ctx context.Context) error
}

// NewServices wires the gorm repositories and the object store together.
func NewServices(db *gorm.DB, store storage.Store, resolver storage.KeyResolver, cfg *config.Config) *Services {
	janitor := storage.NewJanitor(store, resolver)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	hub := notify.NewHub()

	return &Services{
		Products:      catalog.NewProducts(catalog.NewGormRepository[models.Product](db, "Product"), janitor),
		Categories:    catalog.NewCategories(catalog.NewGormRepository[models.ProductCategory](db, "Product Category"), janitor),
		Subcategories: catalog.NewSubcategories(catalog.NewGormRepository[models.Subcategory](db, "Sub Category"), janitor),
		Banners:       catalog.NewBanners(catalog.NewGormRepository[models.Banner](db, "Banner"), janitor),
		Customers:     catalog.NewCustomers(catalog.NewGormCustomerRepository(db), janitor, tokens),
		Admins:        catalog.NewAdmins(catalog.NewGormAdminRepository(db), tokens),
		Orders:        orders.NewService(orders.NewGormRepository(db), hub),
		Payments:      payment.NewRazorpay(cfg.Razorpay),
		Stock:         inventory.NewStore(db),
		Hub:           hub,
		Uploader:      storage.NewUploader(store, janitor),
		Janitor:       janitor,
		Tokens:        tokens,
		AdminAPIKey:   cfg.AdminAPIKey,
		Currency:      cfg.Razorpay.Currency,
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

// RequireAdmin gates a route on the admin API key or an admin token.
func (s *Services) RequireAdmin() gin.HandlerFunc {
	return middleware.ValidateAdmin(s.AdminAPIKey, s.Tokens)
}
