package storage_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upparakash/AspireBrandApi/storage"
	"github.com/upparakash/AspireBrandApi/storage/storagetest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func multipartRequest(t *testing.T, files map[string]string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, name := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("img:" + name))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newRouter(store *storagetest.MemStore, seen *storage.Uploads) *gin.Engine {
	uploader := storage.NewUploader(store, store.Janitor())
	r := gin.New()
	r.POST("/upload", uploader.Fields(storage.FolderProducts, "image_1", "image_2"), func(c *gin.Context) {
		*seen = storage.UploadsFrom(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestUploaderFields(t *testing.T) {
	t.Run("uploads present fields", func(t *testing.T) {
		store := storagetest.New()
		var seen storage.Uploads
		w := httptest.NewRecorder()

		newRouter(store, &seen).ServeHTTP(w, multipartRequest(t,
			map[string]string{"image_1": "front.jpg", "other": "x.jpg"},
			map[string]string{"sku": "SH-1"},
		))

		assert.Equal(t, http.StatusNoContent, w.Code)
		require.Len(t, seen, 1)
		obj := seen["image_1"]
		assert.Equal(t, "image_1", obj.Field)
		assert.True(t, strings.HasPrefix(obj.Key, storage.FolderProducts+"/"))
		assert.True(t, strings.HasSuffix(obj.Key, ".jpg"))
		assert.Equal(t, storagetest.BaseURL+"/"+obj.Key, obj.URL)
		assert.Equal(t, []string{obj.Key}, store.Keys())
	})

	t.Run("failed upload removes earlier objects", func(t *testing.T) {
		store := storagetest.New()
		calls := 0
		store.PutErr = func(string) error {
			calls++
			if calls == 2 {
				return errors.New("slow down")
			}
			return nil
		}
		var seen storage.Uploads
		w := httptest.NewRecorder()

		newRouter(store, &seen).ServeHTTP(w, multipartRequest(t,
			map[string]string{"image_1": "a.jpg", "image_2": "b.jpg"}, nil,
		))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Nil(t, seen)
		assert.Empty(t, store.Keys())
		assert.Len(t, store.Deleted(), 1)
	})

	t.Run("json body yields no uploads", func(t *testing.T) {
		store := storagetest.New()
		var seen storage.Uploads
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		newRouter(store, &seen).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.NotNil(t, seen)
		assert.Empty(t, seen)
	})
}

func TestUploadsFromWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, storage.UploadsFrom(c))
}
