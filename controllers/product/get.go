package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/controllers"
)

func (r *Resource[T, In]) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := controllers.ParamID(c, "id")
		if !ok {
			return
		}
		item, err := r.svc.Get(c.Request.Context(), id)
		if err != nil {
			controllers.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
