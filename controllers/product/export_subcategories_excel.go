package productcontroller

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/catalog"
	"github.com/upparakash/AspireBrandApi/controllers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func ExportSubcategoriesToExcel(subcategories *catalog.Subcategories) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := subcategories.List(c.Request.Context())
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		var buf bytes.Buffer
		if err := catalog.WriteSubcategories(&buf, rows); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=subcategories.xlsx")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
