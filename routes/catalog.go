package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/catalog"
	productcontroller "github.com/upparakash/AspireBrandApi/controllers/product"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
)

// SetupCatalogRoutes registers /api/catalog/*. Writes require an admin.
func SetupCatalogRoutes(api *gin.RouterGroup, s *Services) {
	admin := s.RequireAdmin()
	group := api.Group("/catalog")

	// ─────────── Products ───────────
	products := productcontroller.NewResource[models.Product, catalog.ProductInput](s.Products, s.Janitor, "Product")
	mount(group.Group("/products"), admin, s.Uploader.Fields(storage.FolderProducts, "productImage"),
		products.List(), products.Get(), products.Create(), products.Update(), products.Delete())

	// ─────────── Categories ───────────
	categories := productcontroller.NewResource[models.ProductCategory, catalog.CategoryInput](s.Categories, s.Janitor, "Product Category")
	mount(group.Group("/categories"), admin, s.Uploader.Fields(storage.FolderCategories, "productCategoryImage"),
		categories.List(), categories.Get(), categories.Create(), categories.Update(), categories.Delete())

	// ─────────── Subcategories ───────────
	subGroup := group.Group("/subcategories")
	subGroup.GET("/export-excel", admin, productcontroller.ExportSubcategoriesToExcel(s.Subcategories))
	subGroup.POST("/upload-image", admin,
		s.Uploader.Fields(storage.FolderEditor, productcontroller.EditorField),
		productcontroller.UploadEditorImage)
	subcategories := productcontroller.NewResource[models.Subcategory, catalog.SubcategoryInput](s.Subcategories, s.Janitor, "Sub Category")
	mount(subGroup, admin, s.Uploader.Fields(storage.FolderProducts, models.SubcategoryImageFields...),
		subcategories.List(), subcategories.Get(), subcategories.Create(), subcategories.Update(), subcategories.Delete())

	// ─────────── Banners ───────────
	banners := productcontroller.NewResource[models.Banner, catalog.BannerInput](s.Banners, s.Janitor, "Banner")
	mount(group.Group("/banners"), admin, s.Uploader.Fields(storage.FolderBanners, "bannerImage"),
		banners.List(), banners.Get(), banners.Create(), banners.Update(), banners.Delete())
}

// mount registers the five resource routes on g. The admin check runs
// before the upload so rejected requests store nothing.
func mount(g *gin.RouterGroup, admin, upload gin.HandlerFunc, list, get, create, update, del gin.HandlerFunc) {
	g.GET("", list)
	g.GET("/:id", get)
	g.POST("", admin, upload, create)
	g.PUT("/:id", admin, upload, update)
	g.DELETE("/:id", admin, del)
}
