package paymentControllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/upparakash/AspireBrandApi/controllers"
	"github.com/upparakash/AspireBrandApi/payment"
)

type Gateway interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*payment.Intent, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// PaymentRecorder marks an order paid.
type PaymentRecorder interface {
	MarkPaid(ctx context.Context, id uint, gatewayOrderID, paymentID string) error
}

type CreateOrderRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// CreateOrderResponse hands the gateway order to the checkout widget; the
// storefront reads the gateway order id as orderId.
type CreateOrderResponse struct {
	Success bool `json:"success"`
	*payment.Intent
}

// VerifyRequest is what the checkout widget hands back after payment.
// OrderID is our order; when set, it is marked paid once the signature checks out.
type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           uint   `json:"order_id"`
}

type UpdatePaymentRequest struct {
	OrderID   uint   `json:"orderId"`
	PaymentID string `json:"paymentId"`
}

// POST /api/payment/create-order
func CreateOrder(gateway Gateway, currency string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Amount required"})
			return
		}

		intent, err := gateway.CreateIntent(c.Request.Context(), *req.Amount, currency)
		if errors.Is(err, payment.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Amount must be greater than zero"})
			return
		}
		if err != nil {
			log.Printf("❌ Razorpay order error: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Order creation failed"})
			return
		}

		c.JSON(http.StatusOK, CreateOrderResponse{Success: true, Intent: intent})
	}
}

// POST /api/payment/verify
func Verify(gateway Gateway, recorder PaymentRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
			return
		}

		if !gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
			log.Printf("⚠️ Rejected payment signature for %s", req.RazorpayOrderID)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid signature"})
			return
		}

		if req.OrderID != 0 {
			err := recorder.MarkPaid(c.Request.Context(), req.OrderID, req.RazorpayOrderID, req.RazorpayPaymentID)
			if err != nil {
				controllers.Fail(c, err)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// POST /api/payment/update-payment
func UpdatePayment(recorder PaymentRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing data"})
			return
		}

		if err := recorder.MarkPaid(c.Request.Context(), req.OrderID, "", req.PaymentID); err != nil {
			controllers.Fail(c, err)
			return
		}

		log.Printf("✅ Order %d marked paid", req.OrderID)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
