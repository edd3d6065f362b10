package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/controllers"
)

// Delete removes the row and its stored images.
func (r *Resource[T, In]) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := controllers.ParamID(c, "id")
		if !ok {
			return
		}
		if err := r.svc.Delete(c.Request.Context(), id); err != nil {
			controllers.Fail(c, err)
			return
		}

		log.Printf("🗑️ %s %d deleted", r.what, id)
		c.JSON(http.StatusOK, gin.H{"message": r.what + " deleted successfully"})
	}
}
