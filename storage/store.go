package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Logical folders objects are written under.
const (
	FolderProducts   = "AspireBrandStore"
	FolderCategories = "AspireBrandStore/ProductCategories"
	FolderBanners    = "AspireBrandBanner"
	FolderCustomers  = "AspireBrandStore/CustomerRegisterProfile"
	FolderEditor     = "AspireBrandStore/Editor"
)

// Store is the object store the catalog writes images to.
type Store interface {
	// Put writes body under key and returns the object's public URL.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Object is one uploaded file of a request.
type Object struct {
	Field string `json:"field"`
	Key   string `json:"key"`
	URL   string `json:"url"`
}

// Uploads maps multipart field names to the objects written for them.
type Uploads map[string]Object

// Get returns the URL uploaded for field.
func (u Uploads) Get(field string) (string, bool) {
	obj, ok := u[field]
	return obj.URL, ok
}

// URLs lists every uploaded URL.
func (u Uploads) URLs() []string {
	urls := make([]string, 0, len(u))
	for _, obj := range u {
		urls = append(urls, obj.URL)
	}
	return urls
}

// NewKey builds <folder>/<unix-ms>-<uuid><ext> from the client filename.
func NewKey(folder, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 || strings.ContainsAny(ext, " /\\") {
		ext = ""
	}
	return fmt.Sprintf("%s/%d-%s%s", strings.Trim(folder, "/"), now.UnixMilli(), uuid.NewString(), ext)
}
