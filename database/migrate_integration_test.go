//go:build integration

package database_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/database"
	"github.com/upparakash/AspireBrandApi/database/dbtest"
	"github.com/upparakash/AspireBrandApi/models"
)

func TestUniqueIndexesAreCaseInsensitive(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, db.Create(&models.Subcategory{
		Category: "Shirts", Name: "Oxford", Price: decimal.NewFromInt(999), SKU: "SH-001",
	}).Error)

	err := db.Create(&models.Subcategory{
		Category: "Shirts", Name: "Oxford Blue", Price: decimal.NewFromInt(999), SKU: "sh-001",
	}).Error
	classified := database.Classify(err, "Subcategory")

	assert.ErrorIs(t, classified, apperror.ErrDuplicateKey)
	assert.Equal(t, "sku", apperror.FieldOf(classified))
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := dbtest.Open(t)
	assert.NoError(t, database.Migrate(db))
}
