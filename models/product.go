package models

import "time"

type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"product_name"`
	Image     string    `gorm:"not null" json:"product_image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) GetID() uint { return p.ID }

func (p *Product) Attachments() []Attachment {
	return []Attachment{{Field: "productImage", Ref: &p.Image}}
}

func (p *Product) UniqueKeys() []UniqueKey {
	return []UniqueKey{{Column: "name", Field: "productName", Value: p.Name}}
}

// ProductCategory groups subcategories under a product line. Name refers to
// the parent product's name, Category is the category's own unique label.
type ProductCategory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"product_name"`
	Category  string    `gorm:"not null" json:"product_category"`
	Image     string    `gorm:"not null" json:"product_category_image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *ProductCategory) GetID() uint { return c.ID }

func (c *ProductCategory) Attachments() []Attachment {
	return []Attachment{{Field: "productCategoryImage", Ref: &c.Image}}
}

func (c *ProductCategory) UniqueKeys() []UniqueKey {
	return []UniqueKey{{Column: "category", Field: "productCategory", Value: c.Category}}
}
