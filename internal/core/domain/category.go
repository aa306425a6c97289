package domain

import (
	"fmt"
	"strings"
)

// Category is one of the fixed asset buckets. Each maps to a subdirectory
// of the asset root with the same name.
type Category string

const (
	CategoryItems         Category = "items"
	CategoryLoadingScreen Category = "loadingscreen"
	CategoryMaps          Category = "maps"
	CategoryOther         Category = "other"
	CategoryVehicles      Category = "vehicles"
)

// AllCategories returns every category in scan order
func AllCategories() []Category {
	return []Category{
		CategoryItems,
		CategoryLoadingScreen,
		CategoryMaps,
		CategoryOther,
		CategoryVehicles,
	}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryItems, CategoryLoadingScreen, CategoryMaps, CategoryOther, CategoryVehicles:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a user supplied value into a Category (case-insensitive)
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (expected one of %s)", s, categoryNames())
	}
	return c, nil
}

func categoryNames() string {
	names := make([]string, 0, len(AllCategories()))
	for _, c := range AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// CategoryFilter restricts a view to one category, or to none when it is
// CategoryAll.
type CategoryFilter string

// CategoryAll is the "no category restriction" sentinel
const CategoryAll CategoryFilter = "all"

// FilterFor returns a filter restricted to c
func FilterFor(c Category) CategoryFilter {
	return CategoryFilter(c)
}

// IsAll reports whether the filter lets every category through
func (f CategoryFilter) IsAll() bool {
	return f == CategoryAll || f == ""
}

// Matches reports whether an asset of category c passes the filter
func (f CategoryFilter) Matches(c Category) bool {
	return f.IsAll() || Category(f) == c
}

// ParseCategoryFilter accepts "all", an empty string, or a category name
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" || trimmed == string(CategoryAll) {
		return CategoryAll, nil
	}
	c, err := ParseCategory(trimmed)
	if err != nil {
		return "", err
	}
	return FilterFor(c), nil
}

// categoryKeywords drives GuessCategory; order matters, first hit wins
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryVehicles, []string{"vehicle", "car", "truck"}},
	{CategoryItems, []string{"item", "weapon", "tool"}},
	{CategoryLoadingScreen, []string{"loading", "splash"}},
	{CategoryMaps, []string{"map", "location"}},
}

// GuessCategory suggests a category for a loose file based on keywords in
// its name. Files with no recognizable keyword land in CategoryOther.
func GuessCategory(filename string) Category {
	name := strings.ToLower(filename)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
