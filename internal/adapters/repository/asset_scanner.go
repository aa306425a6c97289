package repository

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/pkg/library"
)

// FileAssetScanner discovers image assets in the category directories of a
// library. It keeps no state between calls.
type FileAssetScanner struct {
	library *library.Library
	logger  *slog.Logger
}

func NewFileAssetScanner(lib *library.Library, logger *slog.Logger) *FileAssetScanner {
	return &FileAssetScanner{
		library: lib,
		logger:  logger.With("component", "scanner"),
	}
}

// RootExists reports whether the asset root is an existing directory
func (s *FileAssetScanner) RootExists() bool {
	return s.library.Exists()
}

// ScanCategory lists supported image files directly inside the category
// directory. Subdirectories are not descended into.
func (s *FileAssetScanner) ScanCategory(ctx context.Context, category domain.Category) ([]domain.Asset, error) {
	dir := s.library.CategoryPath(category)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("category folder not found", "category", category, "path", dir)
			return nil, nil
		}
		return nil, &domain.CategoryUnavailableError{Category: category, Path: dir, Err: err}
	}

	assets := make([]domain.Asset, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if !domain.IsSupportedExtension(name) {
			continue
		}

		// os.Stat follows symlinks, so a link to a regular file counts
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			s.logger.Warn("skipping unreadable entry", "category", category, "name", name, "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		assets = append(assets, domain.NewAsset(category, name, info.Size(), info.ModTime()))
	}

	return assets, nil
}
