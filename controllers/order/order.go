package orderControllers

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/controllers"
	"github.com/upparakash/AspireBrandApi/middleware"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/orders"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, in orders.PlaceOrderInput) (*models.Order, error)
	ListOrders(ctx context.Context, f orders.Filter) ([]models.Order, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) (*orders.StatusChange, error)
	UpdateItemStatus(ctx context.Context, orderID, itemID uint, status string) (*orders.StatusChange, error)
}

// -------- Request Structs --------
type UpdateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// -------- Handlers --------

// PlaceOrder creates an order with its lines. A logged-in customer is
// recorded on the order; guests may order too.
func PlaceOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in orders.PlaceOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}
		if id, ok := middleware.CustomerID(c); ok {
			in.CustomerID = &id
		}

		order, err := svc.PlaceOrder(c.Request.Context(), in)
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		// Keys follow what the storefront checkout reads.
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       "Order placed successfully",
			"orderId":       order.ID,
			"paymentMethod": order.PaymentMethod,
			"paymentStatus": order.PaymentStatus,
			"totalAmount":   order.TotalAmount,
		})
	}
}

// GetOrders lists every order, or one phone number's orders with ?phone=.
func GetOrders(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.ListOrders(c.Request.Context(), orders.Filter{Phone: strings.TrimSpace(c.Query("phone"))})
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetMyOrders lists the logged-in customer's orders.
func GetMyOrders(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := middleware.CustomerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		list, err := svc.ListOrders(c.Request.Context(), orders.Filter{CustomerID: &id})
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := controllers.ParamID(c, "id")
		if !ok {
			return
		}
		order, err := svc.GetOrder(c.Request.Context(), id)
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id/status
func UpdateOrderStatus(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := controllers.ParamID(c, "id")
		if !ok {
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		change, err := svc.UpdateOrderStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "data": change})
	}
}

// PUT /api/orders/:id/items/:itemId/status
func UpdateItemStatus(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := controllers.ParamID(c, "id")
		if !ok {
			return
		}
		itemID, ok := controllers.ParamID(c, "itemId")
		if !ok {
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		change, err := svc.UpdateItemStatus(c.Request.Context(), orderID, itemID, req.Status)
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item status updated", "data": change})
	}
}

// ExportOrdersToExcel downloads every order, one row per line.
func ExportOrdersToExcel(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.ListOrders(c.Request.Context(), orders.Filter{})
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		var buf bytes.Buffer
		if err := orders.WriteWorkbook(&buf, list); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}
