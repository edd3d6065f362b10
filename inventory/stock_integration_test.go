//go:build integration

package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/database/dbtest"
	"github.com/upparakash/AspireBrandApi/inventory"
	"github.com/upparakash/AspireBrandApi/models"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	store := inventory.NewStore(db)

	require.NoError(t, db.Create(&models.ProductCategory{Name: "Men", Category: "Shirts", Image: "x"}).Error)
	shirt := models.Subcategory{Category: "Men", Name: "Oxford", Price: decimal.NewFromInt(999), SKU: "OX-1"}
	belt := models.Subcategory{Category: "Accessories", Name: "Belt", Price: decimal.NewFromInt(299), SKU: "BL-1"}
	require.NoError(t, db.Create(&shirt).Error)
	require.NoError(t, db.Create(&belt).Error)

	require.NoError(t, store.Add(ctx, shirt.ID, 10))
	require.NoError(t, store.Add(ctx, shirt.ID, 5))
	require.NoError(t, store.Add(ctx, shirt.ID, -20))
	require.NoError(t, store.Add(ctx, shirt.ID, 4))
	assert.ErrorIs(t, store.Add(ctx, 999, 1), apperror.ErrNotFound)

	total, err := store.Total(ctx, shirt.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	total, err = store.Total(ctx, belt.ID)
	require.NoError(t, err)
	assert.Zero(t, total)

	levels, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "Belt", levels[0].SubcategoryName)
	assert.Equal(t, "", levels[0].CategoryName)
	assert.Equal(t, "Shirts", levels[1].CategoryName)
	assert.Equal(t, 4, levels[1].Stock)

	levels, err = store.List(ctx, "Men")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "OX-1", levels[0].SKU)

	cats, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Accessories", "Men"}, cats)
}
