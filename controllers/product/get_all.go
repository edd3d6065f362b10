package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/controllers"
)

// List returns every row, newest first.
func (r *Resource[T, In]) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := r.svc.List(c.Request.Context())
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
