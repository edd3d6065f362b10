package catalog

import (
	"context"
	"strings"

	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
)

type CategoryInput struct {
	ProductName string `form:"productName" json:"productName"`
	Category    string `form:"productCategory" json:"productCategory"`
}

func (in CategoryInput) apply(c *models.ProductCategory) error {
	c.Name = strings.TrimSpace(in.ProductName)
	c.Category = strings.TrimSpace(in.Category)
	if c.Name == "" || c.Category == "" {
		return apperror.Validation("Both productName and productCategory are required")
	}
	return nil
}

type Categories struct {
	lc *Lifecycle[models.ProductCategory, *models.ProductCategory]
}

func NewCategories(repo Repository[models.ProductCategory], janitor Discarder) *Categories {
	return &Categories{lc: NewLifecycle[models.ProductCategory, *models.ProductCategory](repo, janitor, "Category",
		RequireAttachments("Category image is required"),
		DuplicateMessages(map[string]string{"productCategory": "productCategory already exists"}),
	)}
}

func (s *Categories) List(ctx context.Context) ([]models.ProductCategory, error) {
	return s.lc.List(ctx)
}

func (s *Categories) Get(ctx context.Context, id uint) (*models.ProductCategory, error) {
	return s.lc.Find(ctx, id)
}

func (s *Categories) Create(ctx context.Context, in CategoryInput, uploads storage.Uploads) (*models.ProductCategory, error) {
	return s.lc.Create(ctx, uploads, in.apply)
}

func (s *Categories) Update(ctx context.Context, id uint, in CategoryInput, uploads storage.Uploads) (*models.ProductCategory, error) {
	return s.lc.Update(ctx, id, uploads, in.apply)
}

func (s *Categories) Delete(ctx context.Context, id uint) error {
	return s.lc.Delete(ctx, id)
}
