package stockcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/controllers"
	"github.com/upparakash/AspireBrandApi/inventory"
)

// ImportStockFromExcel adds the (subcategory id, stock) rows of the
// uploaded workbook.
func ImportStockFromExcel(svc StockService) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		res, err := inventory.Import(c.Request.Context(), file, excelFileHeader.Size, svc)
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": res.Created,
			"skipped_count": res.Skipped,
		})
	}
}
