//go:build integration

package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/auth"
	"github.com/upparakash/AspireBrandApi/catalog"
	"github.com/upparakash/AspireBrandApi/database/dbtest"
	"github.com/upparakash/AspireBrandApi/models"
	"github.com/upparakash/AspireBrandApi/storage"
	"github.com/upparakash/AspireBrandApi/storage/storagetest"
)

func TestGormRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	store := storagetest.New()
	products := catalog.NewProducts(catalog.NewGormRepository[models.Product](db, "Product"), store.Janitor())

	first, err := products.Create(ctx, catalog.ProductInput{Name: "Shirts"}, storage.Uploads{
		"productImage": {Field: "productImage", Key: "AspireBrandStore/a.jpg", URL: store.Seed("AspireBrandStore/a.jpg")},
	})
	require.NoError(t, err)

	_, err = products.Create(ctx, catalog.ProductInput{Name: "SHIRTS"}, storage.Uploads{
		"productImage": {Field: "productImage", Key: "AspireBrandStore/b.jpg", URL: store.Seed("AspireBrandStore/b.jpg")},
	})
	assert.ErrorIs(t, err, apperror.ErrDuplicateKey)
	assert.False(t, store.Has("AspireBrandStore/b.jpg"))

	updated, err := products.Update(ctx, first.ID, catalog.ProductInput{Name: "Shirts"}, storage.Uploads{
		"productImage": {Field: "productImage", Key: "AspireBrandStore/c.jpg", URL: store.Seed("AspireBrandStore/c.jpg")},
	})
	require.NoError(t, err)
	assert.Equal(t, storagetest.BaseURL+"/AspireBrandStore/c.jpg", updated.Image)
	assert.False(t, store.Has("AspireBrandStore/a.jpg"))

	list, err := products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, products.Delete(ctx, first.ID))
	assert.ErrorIs(t, products.Delete(ctx, first.ID), apperror.ErrNotFound)
	assert.Empty(t, store.Keys())
}

func TestGormCustomerRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := catalog.NewGormCustomerRepository(db)

	require.NoError(t, repo.Insert(ctx, &models.Customer{FullName: "Asha", Email: "Asha@Example.com", Phone: "1", PasswordHash: "x"}))

	c, err := repo.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha", c.FullName)

	taken, err := repo.Taken(ctx, models.UniqueKey{Column: "phone", Value: "1", Exact: true}, 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.Taken(ctx, models.UniqueKey{Column: "phone", Value: "1", Exact: true}, c.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	err = repo.Insert(ctx, &models.Customer{FullName: "B", Email: "asha@example.COM", Phone: "2", PasswordHash: "x"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateKey)
	assert.Equal(t, "email", apperror.FieldOf(err))
}

func TestGormAdminRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	admins := catalog.NewAdmins(catalog.NewGormAdminRepository(db), auth.NewTokens("secret", time.Hour))

	_, err := admins.Register(ctx, catalog.AdminRegisterInput{Name: "Ops", Email: "Ops@Aspire.in", Password: "pw"})
	require.NoError(t, err)

	_, err = admins.Register(ctx, catalog.AdminRegisterInput{Name: "Other", Email: "ops@aspire.in", Password: "pw"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateKey)

	token, a, err := admins.Login(ctx, "ops@aspire.in", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ops", a.Name)
	assert.NotEmpty(t, token)

	list, err := admins.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
