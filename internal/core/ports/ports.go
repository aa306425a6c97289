package ports

import (
	"context"

	"github.com/kamal-hamza/gallery/internal/core/domain"
)

// CategoryScanner defines the port for discovering assets on storage
type CategoryScanner interface {
	// ScanCategory returns every supported asset directly inside the
	// category's directory. A missing directory yields no assets and no error.
	ScanCategory(ctx context.Context, category domain.Category) ([]domain.Asset, error)

	// RootExists reports whether the asset root can be resolved
	RootExists() bool
}

// CatalogSource defines the port for retrieving a full catalog snapshot
type CatalogSource interface {
	// Catalog returns every asset across all categories, ordered by name
	Catalog(ctx context.Context) ([]domain.Asset, error)
}
