// Package inventory tracks stock levels per subcategory.
package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/database"
	"github.com/upparakash/AspireBrandApi/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Add adds qty to the subcategory's stock, creating the row on first use.
// qty may be negative to correct a count but the level never drops below zero.
func (s *Store) Add(ctx context.Context, subcategoryID uint, qty int) error {
	if subcategoryID == 0 {
		return apperror.InvalidField("subcategoryId", "subcategoryId and stock are required")
	}
	if qty == 0 {
		return apperror.InvalidField("stock", "Stock must be a non-zero number")
	}

	return database.Classify(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Subcategory{}).Where("id = ?", subcategoryID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apperror.NotFound("Subcategory not found")
		}

		row := models.Stock{SubcategoryID: subcategoryID, Stock: qty, UpdatedAt: time.Now()}
		if qty < 0 {
			row.Stock = 0
		}
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "subcategory_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"stock":      gorm.Expr("GREATEST(stock.stock + ?, 0)", qty),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).Create(&row).Error
	}), "Stock")
}

// Total returns the stock of one subcategory; unknown ids have zero stock.
func (s *Store) Total(ctx context.Context, subcategoryID uint) (int, error) {
	var total int
	err := s.db.WithContext(ctx).Model(&models.Stock{}).
		Select("COALESCE(SUM(stock), 0)").
		Where("subcategory_id = ?", subcategoryID).
		Scan(&total).Error
	return total, database.Classify(err, "Stock")
}

// List returns every subcategory with its category label and stock,
// optionally narrowed to one category.
func (s *Store) List(ctx context.Context, category string) ([]models.StockLevel, error) {
	q := s.db.WithContext(ctx).Table("subcategories AS sc").
		Select(`sc.id AS subcategory_id,
			sc.name AS subcategory_name,
			sc.sku AS sku,
			COALESCE(MIN(pc.category), '') AS category_name,
			COALESCE((SELECT SUM(st.stock) FROM stock st WHERE st.subcategory_id = sc.id), 0) AS stock`).
		Joins("LEFT JOIN product_categories pc ON pc.name = sc.category").
		Group("sc.id, sc.name, sc.sku").
		Order("category_name, subcategory_name")
	if category = strings.TrimSpace(category); category != "" {
		q = q.Where("sc.category = ?", category)
	}

	levels := []models.StockLevel{}
	if err := q.Scan(&levels).Error; err != nil {
		return nil, database.Classify(err, "Stock")
	}
	return levels, nil
}

// Categories lists the distinct categories subcategories are filed under.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	out := []string{}
	err := s.db.WithContext(ctx).Model(&models.Subcategory{}).
		Distinct().Order("category").Pluck("category", &out).Error
	if err != nil {
		return nil, database.Classify(err, "Stock")
	}
	return out, nil
}
