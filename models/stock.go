package models

import "time"

type Stock struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	SubcategoryID uint        `gorm:"uniqueIndex;not null" json:"subcategory_id"`
	Subcategory   Subcategory `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Stock         int         `gorm:"not null;default:0" json:"stock"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Stock) TableName() string { return "stock" }

// StockLevel is one row of the stock listing: a subcategory with its
// category label and summed stock.
type StockLevel struct {
	SubcategoryID   uint   `json:"subcategory_id"`
	SubcategoryName string `json:"sub_category_name"`
	SKU             string `json:"sku"`
	CategoryName    string `json:"category_name"`
	Stock           int    `json:"stock"`
}
