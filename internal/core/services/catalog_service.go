package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/ports"
)

// CatalogService produces the full asset catalog by scanning every category
type CatalogService struct {
	scanner    ports.CategoryScanner
	logger     *slog.Logger
	maxWorkers int
}

// NewCatalogService creates a new catalog service
func NewCatalogService(scanner ports.CategoryScanner, logger *slog.Logger, maxWorkers int) *CatalogService {
	if maxWorkers <= 0 {
		maxWorkers = len(domain.AllCategories())
	}
	return &CatalogService{
		scanner:    scanner,
		logger:     logger.With("component", "catalog"),
		maxWorkers: maxWorkers,
	}
}

// CategoryCount is the number of assets found in one category
type CategoryCount struct {
	Category domain.Category `json:"category"`
	Count    int             `json:"count"`
	Bytes    int64           `json:"bytes"`
}

// CatalogResponse represents one scan of the asset root
type CatalogResponse struct {
	Assets     []domain.Asset
	Total      int
	Categories []CategoryCount
	ScannedAt  time.Time
}

// ListAll scans every category and returns the assets ordered by name.
// A category that cannot be read contributes nothing; only a missing asset
// root fails the call.
func (s *CatalogService) ListAll(ctx context.Context) (*CatalogResponse, error) {
	if !s.scanner.RootExists() {
		return nil, fmt.Errorf("asset root not found: %w", domain.ErrCatalogUnavailable)
	}

	categories := domain.AllCategories()
	results := make([][]domain.Asset, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			assets, err := s.scanner.ScanCategory(gctx, category)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				s.logger.Warn("category folder not found or inaccessible", "category", category, "error", err)
				return nil
			}
			results[i] = assets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catalog scan aborted: %w", err)
	}

	var all []domain.Asset
	for _, assets := range results {
		all = append(all, assets...)
	}
	if all == nil {
		all = []domain.Asset{}
	}
	total := len(all)

	// Byte-wise, case-sensitive; stable so equal names keep category scan order
	slices.SortStableFunc(all, func(a, b domain.Asset) int {
		return strings.Compare(a.Name, b.Name)
	})

	s.logger.Debug("catalog scanned", "total", total)

	return &CatalogResponse{
		Assets:     all,
		Total:      total,
		Categories: CountByCategory(all),
		ScannedAt:  time.Now(),
	}, nil
}

// Catalog implements ports.CatalogSource
func (s *CatalogService) Catalog(ctx context.Context) ([]domain.Asset, error) {
	resp, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Assets, nil
}

// CountByCategory tallies assets and bytes per category, in scan order
func CountByCategory(assets []domain.Asset) []CategoryCount {
	categories := domain.AllCategories()
	counts := make([]CategoryCount, len(categories))
	index := make(map[domain.Category]int, len(categories))
	for i, c := range categories {
		counts[i] = CategoryCount{Category: c}
		index[c] = i
	}

	for _, a := range assets {
		i, ok := index[a.Category]
		if !ok {
			continue
		}
		counts[i].Count++
		counts[i].Bytes += a.Size
	}
	return counts
}
