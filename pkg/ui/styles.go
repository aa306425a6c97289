package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kamal-hamza/gallery/internal/core/domain"
)

// Terminal palette indices, so themes follow the user's terminal colors
var (
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
)

// categoryColors gives every category folder a stable color in tables and lists
var categoryColors = map[domain.Category]lipgloss.AdaptiveColor{
	domain.CategoryItems:         {Light: "4", Dark: "12"},
	domain.CategoryLoadingScreen: {Light: "5", Dark: "13"},
	domain.CategoryMaps:          {Light: "2", Dark: "10"},
	domain.CategoryOther:         {Light: "8", Dark: "7"},
	domain.CategoryVehicles:      {Light: "3", Dark: "11"},
}

var (
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style
	StyleTitle   lipgloss.Style
	StyleBold    lipgloss.Style

	styleTableHeader lipgloss.Style
	styleTableBorder lipgloss.Style
)

const (
	IconSuccess = "✔"
	IconError   = "✘"
	IconRocket  = "🚀"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconFolder  = "📁"
	IconWatch   = "👀"
)

func init() {
	SetTheme("auto")
}

// SetTheme applies "light", "dark" or "auto" (detected by lipgloss)
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleInfo = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleTitle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
	StyleBold = lipgloss.NewStyle().Bold(true)

	styleTableHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1)
	styleTableBorder = lipgloss.NewStyle().Foreground(ColorMuted)
}

// CategoryStyle colors a category name; unknown categories render muted
func CategoryStyle(c domain.Category) lipgloss.Style {
	color, ok := categoryColors[c]
	if !ok {
		return StyleMuted
	}
	return lipgloss.NewStyle().Foreground(color)
}

func withIcon(style lipgloss.Style, icon, msg string) string {
	return style.Render(icon + " " + msg)
}

func FormatSuccess(msg string) string { return withIcon(StyleSuccess, IconSuccess, msg) }
func FormatError(msg string) string   { return withIcon(StyleError, IconError, msg) }
func FormatInfo(msg string) string    { return withIcon(StyleInfo, IconInfo, msg) }
func FormatWarning(msg string) string { return withIcon(StyleWarning, IconWarning, msg) }
func FormatRocket(msg string) string  { return withIcon(StylePrimary, IconRocket, msg) }

func FormatTitle(title string) string { return StyleTitle.Render(title) }
func FormatMuted(text string) string  { return StyleMuted.Render(text) }

// RenderKeyValue renders "key: value" with the key highlighted
func RenderKeyValue(key string, value any) string {
	return fmt.Sprintf("%s: %v", StyleAccent.Render(key), value)
}
