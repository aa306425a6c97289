package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/ports"
)

// Apply derives the visible view of a catalog. It is a pure function: the
// input slice is never modified and the same inputs give the same output.
//
// Search and category filters run first (in either order, they commute),
// then a stable sort. An unknown sort key leaves the filtered order as is.
func Apply(catalog []domain.Asset, spec domain.FilterSpec) []domain.Asset {
	search := strings.ToLower(spec.Search)

	view := make([]domain.Asset, 0, len(catalog))
	for _, asset := range catalog {
		if search != "" && !strings.Contains(strings.ToLower(asset.Name), search) {
			continue
		}
		if !spec.Category.Matches(asset.Category) {
			continue
		}
		view = append(view, asset)
	}

	compare := comparatorFor(spec.SortBy)
	if compare == nil {
		return view
	}

	if spec.SortOrder == domain.SortDesc {
		asc := compare
		compare = func(a, b domain.Asset) int { return -asc(a, b) }
	}
	slices.SortStableFunc(view, compare)

	return view
}

func comparatorFor(key domain.SortKey) func(a, b domain.Asset) int {
	switch key {
	case domain.SortByName:
		return func(a, b domain.Asset) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case domain.SortBySize:
		return func(a, b domain.Asset) int {
			return cmp.Compare(a.Size, b.Size)
		}
	case domain.SortByDate:
		return func(a, b domain.Asset) int {
			return cmp.Compare(a.LastModified.UnixNano(), b.LastModified.UnixNano())
		}
	default:
		return nil
	}
}

// FilterService runs the filter engine over a catalog source
type FilterService struct {
	source ports.CatalogSource
}

// NewFilterService creates a new filter service
func NewFilterService(source ports.CatalogSource) *FilterService {
	return &FilterService{
		source: source,
	}
}

// FilterRequest represents a request for a filtered view
type FilterRequest struct {
	Spec domain.FilterSpec
}

// FilterResponse represents the derived view
type FilterResponse struct {
	Assets []domain.Asset
	Total  int
}

// Execute fetches the catalog and applies the request's filter spec
func (s *FilterService) Execute(ctx context.Context, req FilterRequest) (*FilterResponse, error) {
	catalog, err := s.source.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	view := Apply(catalog, req.Spec)

	return &FilterResponse{
		Assets: view,
		Total:  len(view),
	}, nil
}
