package productcontroller

import (
	"context"

	"github.com/upparakash/AspireBrandApi/catalog"
	"github.com/upparakash/AspireBrandApi/storage"
)

// Service is what every catalog entity exposes to HTTP.
type Service[T any, In any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, in In, uploads storage.Uploads) (*T, error)
	Update(ctx context.Context, id uint, in In, uploads storage.Uploads) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// Resource serves list/get/create/update/delete for one catalog entity.
// Uploads are written by the storage middleware before these handlers run.
type Resource[T any, In any] struct {
	svc     Service[T, In]
	janitor catalog.Discarder
	what    string
}

func NewResource[T any, In any](svc Service[T, In], janitor catalog.Discarder, what string) *Resource[T, In] {
	return &Resource[T, In]{svc: svc, janitor: janitor, what: what}
}
