package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/upparakash/AspireBrandApi/controllers/payment"
)

func SetupPaymentRoutes(api *gin.RouterGroup, s *Services) {
	pay := api.Group("/payment")
	{
		pay.POST("/create-order", paymentControllers.CreateOrder(s.Payments, s.Currency))
		pay.POST("/verify", paymentControllers.Verify(s.Payments, s.Orders))
		pay.POST("/update-payment", s.RequireAdmin(), paymentControllers.UpdatePayment(s.Orders))
	}
}
