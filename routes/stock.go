package routes

import (
	"github.com/gin-gonic/gin"
	stockcontroller "github.com/upparakash/AspireBrandApi/controllers/stock"
)

func SetupStockRoutes(api *gin.RouterGroup, s *Services) {
	admin := s.RequireAdmin()

	stock := api.Group("/stock")
	{
		stock.GET("", stockcontroller.GetStocks(s.Stock))
		stock.GET("/categories", stockcontroller.GetCategories(s.Stock))
		stock.GET("/:subcategoryId", stockcontroller.GetStockByID(s.Stock))
		stock.POST("", admin, stockcontroller.AddStock(s.Stock))
		stock.POST("/import-excel", admin, stockcontroller.ImportStockFromExcel(s.Stock))
	}
}
