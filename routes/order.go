package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/upparakash/AspireBrandApi/controllers/order"
	"github.com/upparakash/AspireBrandApi/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, s *Services) {
	orders := api.Group("/orders")
	{
		// Guests may order; a token links the order to the customer
		orders.POST("", middleware.OptionalToken(s.Tokens), orderControllers.PlaceOrder(s.Orders))

		// All orders, or ?phone=
		orders.GET("", orderControllers.GetOrders(s.Orders))
		orders.GET("/mine", middleware.ValidateToken(s.Tokens), orderControllers.GetMyOrders(s.Orders))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", s.Hub.Handle)

		orders.GET("/export-excel", s.RequireAdmin(), orderControllers.ExportOrdersToExcel(s.Orders))
		orders.GET("/:id", orderControllers.GetOrder(s.Orders))

		// Status changes come from the back office
		admin := s.RequireAdmin()
		orders.PUT("/:id/status", admin, orderControllers.UpdateOrderStatus(s.Orders))
		orders.PUT("/:id/items/:itemId/status", admin, orderControllers.UpdateItemStatus(s.Orders))
	}
}
