package domain

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// assetNamespace seeds the name-based UUIDs used as asset ids
var assetNamespace = uuid.MustParse("6f1c2a8e-4b7d-5e90-9a3c-2d8f0e6b71a4")

// SupportedExtensions lists the image extensions picked up by a scan
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// Dimensions holds pixel size of an image. Scans leave it unset.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Asset describes one image file discovered by a scan. It is a snapshot
// of the filesystem at scan time, not a managed record.
type Asset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`     // Base name incl. extension (e.g. truck-01.png)
	URL          string      `json:"url"`      // Root-relative location, /<category>/<name>
	Category     Category    `json:"category"`
	Size         int64       `json:"size"`
	LastModified time.Time   `json:"lastModified"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
}

// NewAsset builds a descriptor for a file in a category directory
func NewAsset(category Category, name string, size int64, modTime time.Time) Asset {
	if size < 0 {
		size = 0
	}
	return Asset{
		ID:           AssetID(category, name),
		Name:         name,
		URL:          AssetURL(category, name),
		Category:     category,
		Size:         size,
		LastModified: modTime,
	}
}

// AssetID derives a stable identifier from category and file name, so the
// same file keeps its id across scans.
func AssetID(category Category, name string) string {
	return uuid.NewSHA1(assetNamespace, []byte(string(category)+"/"+name)).String()
}

// AssetURL returns the root-relative path the file is served from
func AssetURL(category Category, name string) string {
	return "/" + string(category) + "/" + url.PathEscape(name)
}

// IsSupportedExtension reports whether the file name carries one of the
// supported image extensions (case-insensitive)
func IsSupportedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
