package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubcategoryImageFields are the multipart fields of the four gallery images,
// in slot order.
var SubcategoryImageFields = []string{"image_1", "image_2", "image_3", "image_4"}

type Subcategory struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Category    string          `gorm:"not null;index" json:"product_category"`
	Name        string          `gorm:"not null" json:"sub_category_name"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	SKU         string          `gorm:"column:sku;not null" json:"sku"`
	Material    string          `json:"material"`
	Brand       string          `json:"brand"`
	Description string          `gorm:"type:text" json:"description"`
	Gender      string          `json:"gender"`
	Image1      string          `gorm:"column:image_1" json:"image_1"`
	Image2      string          `gorm:"column:image_2" json:"image_2"`
	Image3      string          `gorm:"column:image_3" json:"image_3"`
	Image4      string          `gorm:"column:image_4" json:"image_4"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (s *Subcategory) GetID() uint { return s.ID }

func (s *Subcategory) Attachments() []Attachment {
	return []Attachment{
		{Field: SubcategoryImageFields[0], Ref: &s.Image1},
		{Field: SubcategoryImageFields[1], Ref: &s.Image2},
		{Field: SubcategoryImageFields[2], Ref: &s.Image3},
		{Field: SubcategoryImageFields[3], Ref: &s.Image4},
	}
}

func (s *Subcategory) UniqueKeys() []UniqueKey {
	return []UniqueKey{{Column: "sku", Field: "sku", Value: s.SKU}}
}
