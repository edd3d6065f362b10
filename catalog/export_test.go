package catalog

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"github.com/upparakash/AspireBrandApi/models"
)

func TestWriteSubcategories(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSubcategories(&buf, []models.Subcategory{
		{ID: 4, Category: "Men", Name: "Oxford", Price: decimal.RequireFromString("999.50"), SKU: "OX-1", Image1: "https://cdn/1.jpg"},
	})
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	sheet := file.Sheets[0]
	require.Equal(t, 2, sheet.MaxRow)

	assert.Equal(t, "SubCategoryName", sheet.Rows[0].Cells[2].String())
	cells := sheet.Rows[1].Cells
	assert.Equal(t, "4", cells[0].String())
	assert.Equal(t, "Oxford", cells[2].String())
	assert.Equal(t, "999.5", cells[3].Value)
	assert.Equal(t, "OX-1", cells[4].String())
	assert.Equal(t, "https://cdn/1.jpg", cells[9].String())
}
