package storage

import (
	"net/url"
	"strings"
)

const amazonMarker = ".amazonaws.com/"

// KeyResolver recovers the object key from a stored URL.
type KeyResolver struct {
	Bucket        string
	PublicBaseURL string
}

// Resolve returns the key ref points at. Empty, relative or unparseable
// references resolve to nothing and are not an error.
func (r KeyResolver) Resolve(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}

	if base := strings.TrimRight(r.PublicBaseURL, "/"); base != "" {
		if rest, ok := strings.CutPrefix(ref, base+"/"); ok {
			return r.clean(rest)
		}
	}

	if _, rest, ok := strings.Cut(ref, amazonMarker); ok {
		return r.clean(rest)
	}

	u, err := url.Parse(ref)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", false
	}
	return r.clean(u.EscapedPath())
}

// clean drops the query, unescapes and strips a leading bucket segment.
func (r KeyResolver) clean(path string) (string, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path, err := url.PathUnescape(strings.TrimLeft(path, "/"))
	if err != nil {
		return "", false
	}

	if r.Bucket != "" {
		if rest, ok := strings.CutPrefix(path, r.Bucket+"/"); ok {
			path = rest
		}
	}
	if path == "" {
		return "", false
	}
	return path, true
}
