package catalog

import (
	"context"
	"strings"

	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
)

type ProductInput struct {
	Name string `form:"productName" json:"productName"`
}

type Products struct {
	lc *Lifecycle[models.Product, *models.Product]
}

func NewProducts(repo Repository[models.Product], janitor Discarder) *Products {
	return &Products{lc: NewLifecycle[models.Product, *models.Product](repo, janitor, "Product",
		RequireAttachments("Product image is required"),
		DuplicateMessages(map[string]string{"productName": "Product name already exists"}),
	)}
}

func (s *Products) List(ctx context.Context) ([]models.Product, error) {
	return s.lc.List(ctx)
}

func (s *Products) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.lc.Find(ctx, id)
}

func (s *Products) Create(ctx context.Context, in ProductInput, uploads storage.Uploads) (*models.Product, error) {
	return s.lc.Create(ctx, uploads, func(p *models.Product) error {
		p.Name = strings.TrimSpace(in.Name)
		return required("productName", "Product name is required", p.Name)
	})
}

// Update renames the product and swaps its image when a new one was uploaded.
func (s *Products) Update(ctx context.Context, id uint, in ProductInput, uploads storage.Uploads) (*models.Product, error) {
	return s.lc.Update(ctx, id, uploads, func(p *models.Product) error {
		p.Name = strings.TrimSpace(in.Name)
		return required("productName", "Product name is required", p.Name)
	})
}

func (s *Products) Delete(ctx context.Context, id uint) error {
	return s.lc.Delete(ctx, id)
}
