package catalog

import (
	"io"

	"github.com/tealeg/xlsx"
	"github.com/upparakash/AspireBrandApi/models"
)

var subcategoryHeaders = []string{
	"ID", "ProductCategory", "SubCategoryName", "Price", "SKU", "Material", "Brand",
	"Description", "Gender", "Image1", "Image2", "Image3", "Image4", "CreatedAt", "UpdatedAt",
}

// WriteSubcategories writes rows as a single-sheet workbook.
func WriteSubcategories(w io.Writer, rows []models.Subcategory) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Subcategories")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range subcategoryHeaders {
		header.AddCell().SetValue(h)
	}

	for _, sc := range rows {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(sc.ID))
		row.AddCell().SetValue(sc.Category)
		row.AddCell().SetValue(sc.Name)
		row.AddCell().SetFloat(sc.Price.InexactFloat64())
		row.AddCell().SetValue(sc.SKU)
		row.AddCell().SetValue(sc.Material)
		row.AddCell().SetValue(sc.Brand)
		row.AddCell().SetValue(sc.Description)
		row.AddCell().SetValue(sc.Gender)
		row.AddCell().SetValue(sc.Image1)
		row.AddCell().SetValue(sc.Image2)
		row.AddCell().SetValue(sc.Image3)
		row.AddCell().SetValue(sc.Image4)
		row.AddCell().SetValue(sc.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(sc.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}
