package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/kamal-hamza/gallery/internal/core/domain"
)

func TestAssetTable(t *testing.T) {
	mod := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	long := strings.Repeat("x", NameWidth+10) + ".png"
	assets := []domain.Asset{
		domain.NewAsset(domain.CategoryVehicles, "truck.png", 4096, mod),
		domain.NewAsset(domain.CategoryItems, long, 10, time.Time{}),
	}

	out := AssetTable(assets)

	for _, want := range []string{
		"Name", "Category", "Size", "Modified", "URL",
		"truck.png", "vehicles", "4.1 kB", "2024-03-09 14:05", "/vehicles/truck.png",
		Truncate(long, NameWidth),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q\n%s", want, out)
		}
	}
	if strings.Contains(out, long) {
		t.Error("expected long name to be truncated")
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, header, header separator, two rows, bottom border
	if len(lines) != 6 {
		t.Errorf("expected 6 lines, got %d\n%s", len(lines), out)
	}
}

func TestAssetTable_Empty(t *testing.T) {
	out := AssetTable(nil)
	if !strings.Contains(out, "Name") {
		t.Errorf("expected headers for an empty table, got %q", out)
	}
}

func TestCategoryTable(t *testing.T) {
	out := CategoryTable([]CategoryTotal{
		{Category: domain.CategoryItems, Count: 2, Bytes: 1500},
		{Category: domain.CategoryMaps, Count: 1, Bytes: 500},
		{Category: domain.CategoryVehicles},
	})

	for _, want := range []string{"Files", "items", "maps", "vehicles", "1.5 kB", "500 B", "0 B"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q\n%s", want, out)
		}
	}

	var total string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "total") {
			total = line
		}
	}
	if total == "" {
		t.Fatalf("expected a total row\n%s", out)
	}
	if !strings.Contains(total, "3") || !strings.Contains(total, "2.0 kB") {
		t.Errorf("total row = %q, want 3 files and 2.0 kB", total)
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := FormatTimestamp(time.Time{}); got != "-" {
		t.Errorf("FormatTimestamp(zero) = %q, want \"-\"", got)
	}
	ts := time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)
	if got := FormatTimestamp(ts); got != "2023-12-31 23:59" {
		t.Errorf("FormatTimestamp = %q", got)
	}
}

func TestRenderCategoryList(t *testing.T) {
	out := RenderCategoryList([]domain.Category{domain.CategoryMaps, domain.CategoryOther})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "maps") || !strings.Contains(lines[1], "other") {
		t.Errorf("unexpected list: %q", out)
	}
}

func TestCategoryStyle(t *testing.T) {
	for _, c := range domain.AllCategories() {
		if _, ok := categoryColors[c]; !ok {
			t.Errorf("category %q has no color", c)
		}
	}
	if got := CategoryStyle(domain.Category("weapons")).Render("x"); !strings.Contains(got, "x") {
		t.Errorf("unknown category should still render, got %q", got)
	}
}

func TestRenderKeyValue(t *testing.T) {
	if got := RenderKeyValue("Files", 3); !strings.Contains(got, "Files") || !strings.HasSuffix(got, ": 3") {
		t.Errorf("RenderKeyValue = %q", got)
	}
}
