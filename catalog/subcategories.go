package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
)

// SubcategoryInput carries optional form values; nil means not sent.
type SubcategoryInput struct {
	Category    *string `form:"productCategory" json:"productCategory"`
	Name        *string `form:"subCategoryName" json:"subCategoryName"`
	Price       *string `form:"price" json:"price"`
	SKU         *string `form:"sku" json:"sku"`
	Material    *string `form:"material" json:"material"`
	Brand       *string `form:"brand" json:"brand"`
	Description *string `form:"description" json:"description"`
	Gender      *string `form:"gender" json:"gender"`
}

type Subcategories struct {
	lc *Lifecycle[models.Subcategory, *models.Subcategory]
}

func NewSubcategories(repo Repository[models.Subcategory], janitor Discarder) *Subcategories {
	return &Subcategories{lc: NewLifecycle[models.Subcategory, *models.Subcategory](repo, janitor, "Sub Category",
		RequireAttachments("All 4 images (image_1..image_4) are required"),
		DuplicateMessages(map[string]string{"sku": "SKU already exists"}),
	)}
}

func (s *Subcategories) List(ctx context.Context) ([]models.Subcategory, error) {
	return s.lc.List(ctx)
}

func (s *Subcategories) Get(ctx context.Context, id uint) (*models.Subcategory, error) {
	return s.lc.Find(ctx, id)
}

// Create requires category, name, price, SKU and all four images.
func (s *Subcategories) Create(ctx context.Context, in SubcategoryInput, uploads storage.Uploads) (*models.Subcategory, error) {
	return s.lc.Create(ctx, uploads, func(sc *models.Subcategory) error {
		category, _ := text(in.Category)
		name, _ := text(in.Name)
		price, _ := text(in.Price)
		sku, _ := text(in.SKU)
		if category == "" || name == "" || price == "" || sku == "" {
			return apperror.Validation("Product Category, Sub Category Name, Price, and SKU are required")
		}

		amount, err := parsePrice(price)
		if err != nil {
			return err
		}
		sc.Category, sc.Name, sc.Price, sc.SKU = category, name, amount, sku
		sc.Material, _ = text(in.Material)
		sc.Brand, _ = text(in.Brand)
		sc.Description, _ = text(in.Description)
		sc.Gender, _ = text(in.Gender)
		return nil
	})
}

// Update changes only the fields and image slots that were sent.
func (s *Subcategories) Update(ctx context.Context, id uint, in SubcategoryInput, uploads storage.Uploads) (*models.Subcategory, error) {
	return s.lc.Update(ctx, id, uploads, func(sc *models.Subcategory) error {
		changed := 0
		set := func(dst *string, v *string) {
			if val, ok := text(v); ok && val != "" {
				*dst = val
				changed++
			}
		}
		set(&sc.Category, in.Category)
		set(&sc.Name, in.Name)
		set(&sc.SKU, in.SKU)
		set(&sc.Material, in.Material)
		set(&sc.Brand, in.Brand)
		set(&sc.Description, in.Description)
		set(&sc.Gender, in.Gender)

		if price, ok := text(in.Price); ok && price != "" {
			amount, err := parsePrice(price)
			if err != nil {
				return err
			}
			sc.Price = amount
			changed++
		}

		for _, field := range models.SubcategoryImageFields {
			if _, ok := uploads.Get(field); ok {
				changed++
			}
		}
		if changed == 0 {
			return apperror.Validation("No fields provided for update")
		}
		return nil
	})
}

func (s *Subcategories) Delete(ctx context.Context, id uint) error {
	return s.lc.Delete(ctx, id)
}

func parsePrice(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || amount.IsNegative() {
		return decimal.Decimal{}, apperror.InvalidField("price", "Price must be a non-negative number")
	}
	return amount.Round(2), nil
}
