package orders

import (
	"context"

	"github.com/upparakash/AspireBrandApi/database"
	"github.com/upparakash/AspireBrandApi/models"
	"gorm.io/gorm"
)

// Filter narrows ListOrders; zero values match everything.
type Filter struct {
	Phone      string
	CustomerID *uint
}

type Repository interface {
	// Create writes the header and its lines; on return order.ID and every
	// line's ID and OrderID are set.
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) error
	List(ctx context.Context, f Filter) ([]models.Order, error)
	Find(ctx context.Context, id uint) (*models.Order, error)
	Items(ctx context.Context, orderIDs []uint) ([]models.OrderItem, error)

	// Mutations return the number of rows they touched.
	SetOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (int64, error)
	SetItemStatus(ctx context.Context, orderID, itemID uint, status models.OrderStatus) (int64, error)
	MarkPaid(ctx context.Context, id uint, gatewayOrderID, paymentID string) (int64, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
	return database.Classify(err, "Order")
}

func (r *GormRepository) List(ctx context.Context, f Filter) ([]models.Order, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if f.Phone != "" {
		q = q.Where("phone = ?", f.Phone)
	}
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, database.Classify(err, "Order")
	}
	return orders, nil
}

func (r *GormRepository) Find(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, database.Classify(err, "Order")
	}
	return &order, nil
}

func (r *GormRepository) Items(ctx context.Context, orderIDs []uint) ([]models.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var items []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Order("id").Find(&items).Error
	if err != nil {
		return nil, database.Classify(err, "Order item")
	}
	return items, nil
}

func (r *GormRepository) SetOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("order_status", status)
	return res.RowsAffected, database.Classify(res.Error, "Order")
}

func (r *GormRepository) SetItemStatus(ctx context.Context, orderID, itemID uint, status models.OrderStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Update("item_status", status)
	return res.RowsAffected, database.Classify(res.Error, "Order item")
}

func (r *GormRepository) MarkPaid(ctx context.Context, id uint, gatewayOrderID, paymentID string) (int64, error) {
	updates := map[string]interface{}{
		"payment_status":      models.PaymentStatusPaid,
		"razorpay_payment_id": paymentID,
	}
	if gatewayOrderID != "" {
		updates["razorpay_order_id"] = gatewayOrderID
	}
	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, database.Classify(res.Error, "Order")
}
