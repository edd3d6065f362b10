package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upparakash/AspireBrandApi/storage"
)

// EditorField is the multipart field rich-text editors post images under.
const EditorField = "upload"

// UploadEditorImage answers a rich-text editor image upload with the
// stored URL.
func UploadEditorImage(c *gin.Context) {
	url, ok := storage.UploadsFrom(c).Get(EditorField)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"uploaded": false,
			"error":    gin.H{"message": "No file uploaded"},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploaded": true, "url": url})
}
