package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kamal-hamza/gallery/internal/core/domain"
)

const (
	// NameWidth is where asset names get truncated in tables
	NameWidth = 36

	TimestampLayout = "2006-01-02 15:04"
)

// CategoryTotal is one line of the per-category summary
type CategoryTotal struct {
	Category domain.Category
	Count    int
	Bytes    int64
}

var (
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	rightAlign = cellStyle.Align(lipgloss.Right)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleTableBorder).
		BorderColumn(false).
		Headers(headers...)
}

// FormatTimestamp renders a modification time the way tables show it
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(TimestampLayout)
}

// AssetTable renders assets with a colored category column and
// right-aligned human sizes
func AssetTable(assets []domain.Asset) string {
	const (
		colCategory = 1
		colSize     = 2
	)

	t := newTable("Name", "Category", "Size", "Modified", "URL")
	for _, a := range assets {
		t.Row(
			Truncate(a.Name, NameWidth),
			string(a.Category),
			FormatSize(a.Size),
			FormatTimestamp(a.LastModified),
			a.URL,
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return styleTableHeader
		case col == colSize:
			return rightAlign
		case col == colCategory && row < len(assets):
			return cellStyle.Foreground(CategoryStyle(assets[row].Category).GetForeground())
		}
		return cellStyle
	})

	return t.String()
}

// CategoryTable renders counts and sizes per category with a total row
func CategoryTable(totals []CategoryTotal) string {
	t := newTable("Category", "Files", "Size")

	var files int
	var bytes int64
	for _, c := range totals {
		t.Row(string(c.Category), strconv.Itoa(c.Count), FormatSize(c.Bytes))
		files += c.Count
		bytes += c.Bytes
	}
	t.Row("total", strconv.Itoa(files), FormatSize(bytes))

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return styleTableHeader
		case row == len(totals):
			if col == 0 {
				return cellStyle.Inherit(StyleBold)
			}
			return rightAlign.Inherit(StyleBold)
		case col == 0:
			return cellStyle.Foreground(CategoryStyle(totals[row].Category).GetForeground())
		}
		return rightAlign
	})

	return t.String()
}

// RenderCategoryList renders one bulleted line per category
func RenderCategoryList(categories []domain.Category) string {
	var b strings.Builder
	for _, c := range categories {
		b.WriteString(StyleInfo.Render("  • "))
		b.WriteString(CategoryStyle(c).Render(string(c)))
		b.WriteString("\n")
	}
	return b.String()
}
