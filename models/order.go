package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order and item statuses
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"

	// Payment statuses
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

var ErrInvalidStatus = errors.New("invalid status")

// ParseOrderStatus accepts exactly one of the fixed status names.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

type Order struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	CustomerID        *uint           `gorm:"index" json:"customer_id,omitempty"`
	FullName          string          `gorm:"not null" json:"full_name"`
	Phone             string          `gorm:"not null;index" json:"phone"`
	Address           string          `gorm:"not null" json:"address"`
	City              string          `gorm:"not null" json:"city"`
	Pincode           string          `gorm:"not null" json:"pincode"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaymentMethod     string          `gorm:"type:VARCHAR(20)" json:"payment_method"` // e.g. "COD", "ONLINE"
	PaymentStatus     PaymentStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"payment_status"`
	OrderStatus       OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"order_status"`
	RazorpayOrderID   *string         `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID *string         `json:"razorpay_payment_id,omitempty"`
	Items             []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt         time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index;not null" json:"order_id"`
	ProductID   *uint           `json:"product_id,omitempty"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	ImageURL    string          `json:"image_url,omitempty"`
	ItemStatus  OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"item_status"`
}
