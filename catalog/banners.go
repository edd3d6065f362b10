package catalog

import (
	"context"
	"strings"

	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
)

type BannerInput struct {
	Title    string `form:"title" json:"title"`
	Project  string `form:"project" json:"project"`
	Platform string `form:"platform" json:"platform"`
}

func (in BannerInput) apply(b *models.Banner) error {
	b.Title = strings.TrimSpace(in.Title)
	b.Project = strings.TrimSpace(in.Project)
	b.Platform = strings.TrimSpace(in.Platform)

	if err := required("title", "Banner title is required", b.Title); err != nil {
		return err
	}
	if err := required("project", "Project is required", b.Project); err != nil {
		return err
	}
	return required("platform", "Platform is required", b.Platform)
}

type Banners struct {
	lc *Lifecycle[models.Banner, *models.Banner]
}

func NewBanners(repo Repository[models.Banner], janitor Discarder) *Banners {
	return &Banners{lc: NewLifecycle[models.Banner, *models.Banner](repo, janitor, "Banner",
		RequireAttachments("Banner image is required"),
	)}
}

func (s *Banners) List(ctx context.Context) ([]models.Banner, error) {
	return s.lc.List(ctx)
}

func (s *Banners) Get(ctx context.Context, id uint) (*models.Banner, error) {
	return s.lc.Find(ctx, id)
}

func (s *Banners) Create(ctx context.Context, in BannerInput, uploads storage.Uploads) (*models.Banner, error) {
	return s.lc.Create(ctx, uploads, in.apply)
}

func (s *Banners) Update(ctx context.Context, id uint, in BannerInput, uploads storage.Uploads) (*models.Banner, error) {
	return s.lc.Update(ctx, id, uploads, in.apply)
}

func (s *Banners) Delete(ctx context.Context, id uint) error {
	return s.lc.Delete(ctx, id)
}
