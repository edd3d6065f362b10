package catalog

import (
	"context"
	"fmt"

	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/database"
	"github.com/upparakash/AspireBrandApi/models"
	"gorm.io/gorm"
)

// Repository persists one cataloged table. Errors are already classified
// into apperror kinds.
type Repository[T any] interface {
	Find(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context) ([]T, error)
	// Taken reports whether another row (id != excludeID) holds key's value.
	Taken(ctx context.Context, key models.UniqueKey, excludeID uint) (bool, error)
	Insert(ctx context.Context, row *T) error
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, id uint) error
}

type GormRepository[T any] struct {
	db   *gorm.DB
	what string
}

// NewGormRepository returns a repository for T; what names the entity in
// client messages.
func NewGormRepository[T any](db *gorm.DB, what string) *GormRepository[T] {
	return &GormRepository[T]{db: db, what: what}
}

func (r *GormRepository[T]) Find(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, database.Classify(err, r.what)
	}
	return &row, nil
}

func (r *GormRepository[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, database.Classify(err, r.what)
	}
	return rows, nil
}

func (r *GormRepository[T]) Taken(ctx context.Context, key models.UniqueKey, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(new(T))
	if key.Exact {
		q = q.Where(fmt.Sprintf("%s = ?", key.Column), key.Value)
	} else {
		q = q.Where(fmt.Sprintf("LOWER(%s) = LOWER(?)", key.Column), key.Value)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, database.Classify(err, r.what)
	}
	return count > 0, nil
}

func (r *GormRepository[T]) Insert(ctx context.Context, row *T) error {
	return database.Classify(r.db.WithContext(ctx).Create(row).Error, r.what)
}

func (r *GormRepository[T]) Update(ctx context.Context, row *T) error {
	return database.Classify(r.db.WithContext(ctx).Save(row).Error, r.what)
}

func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return database.Classify(res.Error, r.what)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(r.what + " not found")
	}
	return nil
}
