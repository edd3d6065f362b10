package stockcontroller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/controllers"
	"github.com/upparakash/AspireBrandApi/inventory"
	"github.com/upparakash/AspireBrandApi/models"
)

type StockService interface {
	inventory.Adder
	Total(ctx context.Context, subcategoryID uint) (int, error)
	List(ctx context.Context, category string) ([]models.StockLevel, error)
	Categories(ctx context.Context) ([]string, error)
}

type AddStockRequest struct {
	SubcategoryID uint `json:"subcategoryId" form:"subcategoryId"`
	Stock         *int `json:"stock" form:"stock"`
}

// GET /api/stock?category=
func GetStocks(svc StockService) gin.HandlerFunc {
	return func(c *gin.Context) {
		levels, err := svc.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, levels)
	}
}

// GET /api/stock/categories
func GetCategories(svc StockService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := svc.Categories(c.Request.Context())
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

// GET /api/stock/:subcategoryId
func GetStockByID(svc StockService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := controllers.ParamID(c, "subcategoryId")
		if !ok {
			return
		}
		total, err := svc.Total(c.Request.Context(), id)
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"subcategory_id": id, "total_stock": total})
	}
}

// POST /api/stock adds to the current level.
func AddStock(svc StockService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddStockRequest
		if err := c.ShouldBind(&req); err != nil || req.SubcategoryID == 0 || req.Stock == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "subcategoryId and stock are required"})
			return
		}

		if err := svc.Add(c.Request.Context(), req.SubcategoryID, *req.Stock); err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Stock added successfully!"})
	}
}
