package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/controllers"
	"github.com/upparakash/AspireBrandApi/storage"
)

// Create binds the form fields, then hands them and the request's uploads
// to the service.
func (r *Resource[T, In]) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		uploads := storage.UploadsFrom(c)

		var in In
		if err := c.ShouldBind(&in); err != nil {
			r.janitor.Discard(c.Request.Context(), uploads.URLs()...)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		item, err := r.svc.Create(c.Request.Context(), in, uploads)
		if err != nil {
			controllers.Fail(c, err)
			return
		}

		log.Printf("✅ %s created", r.what)
		c.JSON(http.StatusCreated, gin.H{
			"message": r.what + " added successfully",
			"data":    item,
		})
	}
}
