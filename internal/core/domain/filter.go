package domain

import "strings"

// SortKey names the field a view is ordered by
type SortKey string

const (
	SortByName SortKey = "name"
	SortBySize SortKey = "size"
	SortByDate SortKey = "date"
)

// Valid reports whether k is a known sort key
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortBySize, SortByDate:
		return true
	}
	return false
}

// Next cycles name -> size -> date -> name
func (k SortKey) Next() SortKey {
	switch k {
	case SortByName:
		return SortBySize
	case SortBySize:
		return SortByDate
	default:
		return SortByName
	}
}

// ParseSortKey normalizes s. Unknown keys are kept as-is; the filter engine
// leaves the order untouched for them.
func ParseSortKey(s string) SortKey {
	return SortKey(strings.ToLower(strings.TrimSpace(s)))
}

// SortOrder is the direction of a sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps anything other than "desc" to ascending
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// Flip returns the opposite direction
func (o SortOrder) Flip() SortOrder {
	if o == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// FilterSpec is the search, category restriction and ordering that derive
// a view from a catalog. It is plain configuration and holds no data.
type FilterSpec struct {
	Search    string         `json:"search" yaml:"search"`
	Category  CategoryFilter `json:"category" yaml:"category"`
	SortBy    SortKey        `json:"sortBy" yaml:"sort_by"`
	SortOrder SortOrder      `json:"sortOrder" yaml:"sort_order"`
}

// DefaultFilterSpec shows everything ordered by name
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Search:    "",
		Category:  CategoryAll,
		SortBy:    SortByName,
		SortOrder: SortAsc,
	}
}
