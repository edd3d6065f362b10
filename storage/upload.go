package storage

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const uploadsKey = "uploads"

// Uploader writes multipart files to the store before the handler runs.
type Uploader struct {
	store   Store
	janitor *Janitor
	now     func() time.Time
}

func NewUploader(store Store, janitor *Janitor) *Uploader {
	return &Uploader{store: store, janitor: janitor, now: time.Now}
}

// Fields uploads the first file of each named field under folder and stores
// the resulting Uploads on the context. If any upload fails, objects already
// written for the request are deleted and the request is aborted.
func (u *Uploader) Fields(folder string, fields ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			if errors.Is(err, http.ErrNotMultipart) {
				c.Set(uploadsKey, Uploads{})
				c.Next()
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		uploads := Uploads{}
		for _, field := range fields {
			files := form.File[field]
			if len(files) == 0 {
				continue
			}
			obj, err := u.put(ctx, folder, field, files[0])
			if err != nil {
				log.Printf("❌ Upload of %s failed: %v", field, err)
				u.janitor.Discard(ctx, uploads.URLs()...)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload " + field})
				c.Abort()
				return
			}
			uploads[field] = obj
		}

		c.Set(uploadsKey, uploads)
		c.Next()
	}
}

func (u *Uploader) put(ctx context.Context, folder, field string, fh *multipart.FileHeader) (Object, error) {
	f, err := fh.Open()
	if err != nil {
		return Object{}, err
	}
	defer f.Close()

	key := NewKey(folder, fh.Filename, u.now())
	url, err := u.store.Put(ctx, key, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		return Object{}, err
	}
	return Object{Field: field, Key: key, URL: url}, nil
}

// UploadsFrom returns the objects uploaded for the current request.
func UploadsFrom(c *gin.Context) Uploads {
	if v, ok := c.Get(uploadsKey); ok {
		if uploads, ok := v.(Uploads); ok {
			return uploads
		}
	}
	return Uploads{}
}
