package orders

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/models"
)

// Events published after a successful write.
const (
	EventPlaced            = "order.placed"
	EventStatusUpdated     = "order.status_updated"
	EventItemStatusUpdated = "order.item_status_updated"
	EventPaid              = "order.paid"
)

type Publisher interface {
	Publish(event string, data interface{})
}

// ProductRef is a cart line's product id. Storefronts send it as a number
// or a numeric string; anything that is not a positive integer is dropped
// rather than failing the order.
type ProductRef struct {
	id *uint
}

func ProductID(id uint) ProductRef {
	return ProductRef{id: &id}
}

func (r *ProductRef) UnmarshalJSON(b []byte) error {
	r.id = nil
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err == nil && n > 0 {
		id := uint(n)
		r.id = &id
	}
	return nil
}

// ID returns the product id, or nil when none was sent.
func (r ProductRef) ID() *uint {
	return r.id
}

// LineInput is one cart line as sent by the storefront. Alternate field
// names are accepted for older clients.
type LineInput struct {
	ProductID   ProductRef       `json:"id"`
	Name        string           `json:"name"`
	ProductName string           `json:"productName"`
	Price       *decimal.Decimal `json:"price"`
	Qty         *int             `json:"qty"`
	Quantity    *int             `json:"quantity"`
	ImageURI    string           `json:"imageUri"`
	ImageURL    string           `json:"imageUrl"`
}

type PlaceOrderInput struct {
	CustomerID        *uint            `json:"-"`
	FullName          string           `json:"fullName"`
	Phone             string           `json:"phone"`
	Address           string           `json:"address"`
	City              string           `json:"city"`
	Pincode           string           `json:"pincode"`
	Items             []LineInput      `json:"items"`
	TotalAmount       *decimal.Decimal `json:"totalAmount"`
	PaymentMethod     string           `json:"paymentMethod"`
	PaymentStatus     string           `json:"paymentStatus"`
	RazorpayOrderID   string           `json:"razorpayOrderId"`
	RazorpayPaymentID string           `json:"razorpayPaymentId"`
}

type Service struct {
	repo      Repository
	publisher Publisher
}

// NewService returns an order service; publisher may be nil.
func NewService(repo Repository, publisher Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// PlaceOrder writes the header and every line, each line starting Pending.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	order := &models.Order{
		CustomerID:    in.CustomerID,
		FullName:      strings.TrimSpace(in.FullName),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		Pincode:       strings.TrimSpace(in.Pincode),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		PaymentStatus: models.PaymentStatus(strings.ToUpper(strings.TrimSpace(in.PaymentStatus))),
		OrderStatus:   models.OrderStatusPending,
	}
	if order.FullName == "" || order.Phone == "" || order.Address == "" ||
		order.City == "" || order.Pincode == "" || len(in.Items) == 0 {
		return nil, apperror.Validation("Missing required fields")
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "COD"
	}
	switch order.PaymentStatus {
	case "":
		order.PaymentStatus = models.PaymentStatusPending
	case models.PaymentStatusPending, models.PaymentStatusPaid:
	default:
		return nil, apperror.InvalidField("paymentStatus", "Invalid payment status")
	}
	if v := strings.TrimSpace(in.RazorpayOrderID); v != "" {
		order.RazorpayOrderID = &v
	}
	if v := strings.TrimSpace(in.RazorpayPaymentID); v != "" {
		order.RazorpayPaymentID = &v
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, line := range in.Items {
		item, err := newItem(line)
		if err != nil {
			return nil, err
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, item)
	}

	order.TotalAmount = total
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return nil, apperror.InvalidField("totalAmount", "Total amount cannot be negative")
		}
		order.TotalAmount = *in.TotalAmount
	}

	if err := s.repo.Create(ctx, order, items); err != nil {
		return nil, err
	}
	order.Items = items

	log.Printf("✅ Order %d placed with %d items", order.ID, len(items))
	s.publish(EventPlaced, order)
	return order, nil
}

func newItem(line LineInput) (models.OrderItem, error) {
	item := models.OrderItem{
		ProductID:   line.ProductID.ID(),
		ProductName: firstNonBlank(line.Name, line.ProductName, "Unknown"),
		Price:       decimal.Zero,
		Quantity:    1,
		ImageURL:    firstNonBlank(line.ImageURI, line.ImageURL, ""),
		ItemStatus:  models.OrderStatusPending,
	}
	if line.Price != nil {
		if line.Price.IsNegative() {
			return item, apperror.InvalidField("price", "Item price cannot be negative")
		}
		item.Price = *line.Price
	}
	switch {
	case line.Qty != nil:
		item.Quantity = *line.Qty
	case line.Quantity != nil:
		item.Quantity = *line.Quantity
	}
	if item.Quantity <= 0 {
		return item, apperror.InvalidField("quantity", "Item quantity must be at least 1")
	}
	return item, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ListOrders returns matching orders newest first, each with its lines.
func (s *Service) ListOrders(ctx context.Context, f Filter) ([]models.Order, error) {
	orders, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []models.Order{}, nil
	}

	ids := make([]uint, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := s.repo.Items(ctx, ids)
	if err != nil {
		return nil, err
	}
	return group(orders, items), nil
}

func (s *Service) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.Items(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	return &group([]models.Order{*order}, items)[0], nil
}

// group attaches items to their orders by OrderID. An order without lines
// gets an empty, non-nil list.
func group(orders []models.Order, items []models.OrderItem) []models.Order {
	byOrder := make(map[uint][]models.OrderItem, len(orders))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	out := make([]models.Order, len(orders))
	for i, o := range orders {
		o.Items = byOrder[o.ID]
		if o.Items == nil {
			o.Items = []models.OrderItem{}
		}
		out[i] = o
	}
	return out
}

type StatusChange struct {
	OrderID uint               `json:"order_id"`
	ItemID  uint               `json:"item_id,omitempty"`
	Status  models.OrderStatus `json:"status"`
}

// UpdateOrderStatus sets the header status; item statuses are untouched.
func (s *Service) UpdateOrderStatus(ctx context.Context, id uint, status string) (*StatusChange, error) {
	st, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, apperror.InvalidField("status", "Invalid status")
	}
	n, err := s.repo.SetOrderStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperror.NotFound("Order not found")
	}

	change := &StatusChange{OrderID: id, Status: st}
	s.publish(EventStatusUpdated, change)
	return change, nil
}

// UpdateItemStatus sets one line's status. The line must belong to orderID.
func (s *Service) UpdateItemStatus(ctx context.Context, orderID, itemID uint, status string) (*StatusChange, error) {
	st, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, apperror.InvalidField("status", "Invalid status")
	}
	n, err := s.repo.SetItemStatus(ctx, orderID, itemID, st)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperror.NotFound("Order item not found")
	}

	change := &StatusChange{OrderID: orderID, ItemID: itemID, Status: st}
	s.publish(EventItemStatusUpdated, change)
	return change, nil
}

// MarkPaid records a captured payment against an order.
func (s *Service) MarkPaid(ctx context.Context, id uint, gatewayOrderID, paymentID string) error {
	paymentID = strings.TrimSpace(paymentID)
	if id == 0 || paymentID == "" {
		return apperror.Validation("Missing data")
	}
	n, err := s.repo.MarkPaid(ctx, id, strings.TrimSpace(gatewayOrderID), paymentID)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound("Order not found")
	}

	s.publish(EventPaid, Payment{OrderID: id, PaymentID: paymentID})
	return nil
}

type Payment struct {
	OrderID   uint   `json:"order_id"`
	PaymentID string `json:"payment_id"`
}

func (s *Service) publish(event string, data interface{}) {
	if s.publisher != nil {
		s.publisher.Publish(event, data)
	}
}
