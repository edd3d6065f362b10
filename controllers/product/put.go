package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/controllers"
	"github.com/upparakash/AspireBrandApi/storage"
)

func (r *Resource[T, In]) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		uploads := storage.UploadsFrom(c)

		id, ok := controllers.ParamID(c, "id")
		if !ok {
			r.janitor.Discard(c.Request.Context(), uploads.URLs()...)
			return
		}

		var in In
		if err := c.ShouldBind(&in); err != nil {
			r.janitor.Discard(c.Request.Context(), uploads.URLs()...)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		item, err := r.svc.Update(c.Request.Context(), id, in, uploads)
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": r.what + " updated successfully",
			"data":    item,
		})
	}
}
