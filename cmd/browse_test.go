package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/adapters/client"
	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/ports/mocks"
	"github.com/kamal-hamza/gallery/pkg/config"
)

func testCatalog() []domain.Asset {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Asset{
		domain.NewAsset(domain.CategoryItems, "b.png", 200, base.Add(2*time.Hour)),
		domain.NewAsset(domain.CategoryVehicles, "a.png", 100, base.Add(1*time.Hour)),
		domain.NewAsset(domain.CategoryItems, "c.jpg", 50, base.Add(3*time.Hour)),
	}
}

func loadedModel(t *testing.T, source *mocks.MockCatalogSource) browseModel {
	t.Helper()
	loader := client.NewLoader(source)
	m := newBrowseModel(context.Background(), loader, domain.DefaultFilterSpec())

	msg := m.loadCatalog()()
	updated, _ := m.Update(msg)
	return updated.(browseModel)
}

func pressKey(m browseModel, k string) browseModel {
	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, _ := m.Update(msg)
	return updated.(browseModel)
}

func viewNames(m browseModel) []string {
	out := make([]string, len(m.view))
	for i, a := range m.view {
		out[i] = a.Name
	}
	return out
}

func TestBrowseModelInitialization(t *testing.T) {
	loader := client.NewLoader(&mocks.MockCatalogSource{})
	m := newBrowseModel(context.Background(), loader, domain.DefaultFilterSpec())

	if m.state != client.StatePending {
		t.Errorf("Expected pending state, got %v", m.state)
	}
	if m.mode != browseModeList {
		t.Errorf("Expected list mode, got %v", m.mode)
	}
	if m.cursor != 0 || m.offset != 0 {
		t.Errorf("Expected cursor and offset at 0, got %d/%d", m.cursor, m.offset)
	}
	if !strings.Contains(m.View(), "Loading catalog") {
		t.Error("Expected pending view to show loading message")
	}
}

func TestBrowseModel_LoadSuccess(t *testing.T) {
	m := loadedModel(t, &mocks.MockCatalogSource{Assets: testCatalog()})

	if m.state != client.StateSuccess {
		t.Fatalf("Expected success state, got %v", m.state)
	}
	got := strings.Join(viewNames(m), ",")
	if got != "a.png,b.png,c.jpg" {
		t.Errorf("Expected name ordering, got %s", got)
	}
	if !strings.Contains(m.View(), "3 of 3 assets") {
		t.Error("Expected header to count assets")
	}
}

func TestBrowseModel_LoadFailure(t *testing.T) {
	m := loadedModel(t, &mocks.MockCatalogSource{Err: &client.FetchFailedError{StatusCode: 500, Message: "Failed to fetch images"}})

	if m.state != client.StateFailure {
		t.Fatalf("Expected failure state, got %v", m.state)
	}
	if len(m.view) != 0 {
		t.Errorf("Expected empty view on failure, got %d", len(m.view))
	}
	view := m.View()
	if !strings.Contains(view, "Could not load the catalog") {
		t.Error("Expected failure message in view")
	}
	if !strings.Contains(view, "Failed to fetch images") {
		t.Error("Expected server message in view")
	}
}

func TestBrowseModel_Reload(t *testing.T) {
	source := &mocks.MockCatalogSource{Err: errors.New("down")}
	m := loadedModel(t, source)

	source.Err = nil
	source.Assets = testCatalog()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")})
	m = updated.(browseModel)
	if m.state != client.StatePending {
		t.Errorf("Expected pending state after reload, got %v", m.state)
	}
	if cmd == nil {
		t.Fatal("Expected reload command")
	}

	updated, _ = m.Update(m.loadCatalog()())
	m = updated.(browseModel)
	if m.state != client.StateSuccess || len(m.view) != 3 {
		t.Errorf("Expected reloaded catalog, got state %v with %d assets", m.state, len(m.view))
	}
}

func TestBrowseModel_CategoryCycle(t *testing.T) {
	m := loadedModel(t, &mocks.MockCatalogSource{Assets: testCatalog()})

	m = pressKey(m, "tab")
	if m.spec.Category != domain.FilterFor(domain.CategoryItems) {
		t.Fatalf("Expected items filter, got %s", m.spec.Category)
	}
	if got := strings.Join(viewNames(m), ","); got != "b.png,c.jpg" {
		t.Errorf("Expected items only, got %s", got)
	}

	for _i := 0; _i < len(domain.AllCategories()); _i++ {
		m = pressKey(m, "tab")
	}
	if !m.spec.Category.IsAll() {
		t.Errorf("Expected filter to wrap back to all, got %s", m.spec.Category)
	}
}

func TestBrowseModel_SortAndOrder(t *testing.T) {
	m := loadedModel(t, &mocks.MockCatalogSource{Assets: testCatalog()})

	m = pressKey(m, "s")
	if m.spec.SortBy != domain.SortBySize {
		t.Fatalf("Expected size sort, got %s", m.spec.SortBy)
	}
	if got := strings.Join(viewNames(m), ","); got != "c.jpg,a.png,b.png" {
		t.Errorf("Expected size ascending, got %s", got)
	}

	m = pressKey(m, "r")
	if m.spec.SortOrder != domain.SortDesc {
		t.Fatalf("Expected desc order, got %s", m.spec.SortOrder)
	}
	if got := strings.Join(viewNames(m), ","); got != "b.png,a.png,c.jpg" {
		t.Errorf("Expected size descending, got %s", got)
	}

	m = pressKey(m, "s")
	if got := strings.Join(viewNames(m), ","); got != "c.jpg,b.png,a.png" {
		t.Errorf("Expected date descending, got %s", got)
	}
}

func TestBrowseModel_Search(t *testing.T) {
	m := loadedModel(t, &mocks.MockCatalogSource{Assets: testCatalog()})

	m = pressKey(m, "/")
	if m.mode != browseModeSearch {
		t.Fatalf("Expected search mode, got %v", m.mode)
	}

	m = pressKey(m, "j")
	m = pressKey(m, "p")
	if m.spec.Search != "jp" {
		t.Fatalf("Expected search 'jp', got %q", m.spec.Search)
	}
	if got := strings.Join(viewNames(m), ","); got != "c.jpg" {
		t.Errorf("Expected only c.jpg, got %s", got)
	}

	m = pressKey(m, "enter")
	if m.mode != browseModeList || m.spec.Search != "jp" {
		t.Errorf("Enter should keep the search and return to list mode")
	}

	m = pressKey(m, "/")
	m = pressKey(m, "esc")
	if m.spec.Search != "" || len(m.view) != 3 {
		t.Errorf("Escape should clear the search, got %q with %d assets", m.spec.Search, len(m.view))
	}
}

func TestBrowseModel_Navigation(t *testing.T) {
	m := loadedModel(t, &mocks.MockCatalogSource{Assets: testCatalog()})

	m = pressKey(m, "j")
	m = pressKey(m, "j")
	if m.cursor != 2 {
		t.Errorf("Expected cursor at 2, got %d", m.cursor)
	}
	m = pressKey(m, "j")
	if m.cursor != 2 {
		t.Errorf("Cursor should stop at the last asset, got %d", m.cursor)
	}

	m = pressKey(m, "g")
	if m.cursor != 0 {
		t.Errorf("Expected cursor at top, got %d", m.cursor)
	}
	m = pressKey(m, "G")
	if m.cursor != 2 {
		t.Errorf("Expected cursor at bottom, got %d", m.cursor)
	}

	a, ok := m.selected()
	if !ok || a.Name != "c.jpg" {
		t.Errorf("Expected c.jpg selected, got %+v", a)
	}
}

func TestBrowseModel_ViewportFollowsCursor(t *testing.T) {
	assets := make([]domain.Asset, 0, 30)
	for i := 0; i < 30; i++ {
		assets = append(assets, domain.NewAsset(domain.CategoryOther, string(rune('a'+i%26))+strings.Repeat("x", i/26)+".png", int64(i), time.Time{}))
	}
	m := loadedModel(t, &mocks.MockCatalogSource{Assets: assets})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = updated.(browseModel)

	for _i := 0; _i < 20; _i++ {
		m = pressKey(m, "j")
	}
	if m.cursor < m.offset || m.cursor >= m.offset+m.listHeight() {
		t.Errorf("Cursor %d outside viewport [%d, %d)", m.cursor, m.offset, m.offset+m.listHeight())
	}
}

func TestBrowseModel_HelpMode(t *testing.T) {
	m := loadedModel(t, &mocks.MockCatalogSource{Assets: testCatalog()})

	m = pressKey(m, "?")
	if m.mode != browseModeHelp {
		t.Fatalf("Expected help mode, got %v", m.mode)
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("Expected help view")
	}

	m = pressKey(m, "x")
	if m.mode != browseModeList {
		t.Errorf("Any key should leave help mode, got %v", m.mode)
	}
}

func TestNextCategoryFilter(t *testing.T) {
	expected := []domain.CategoryFilter{"items", "loadingscreen", "maps", "other", "vehicles", "all"}
	current := domain.CategoryAll
	for _, want := range expected {
		current = nextCategoryFilter(current)
		if current != want {
			t.Fatalf("Expected %s, got %s", want, current)
		}
	}
}

func TestFilterSpecFromFlags(t *testing.T) {
	appConfig = config.DefaultConfig()
	appConfig.DefaultSort = "size"
	appConfig.DefaultOrder = "desc"

	t.Run("config defaults", func(t *testing.T) {
		c := &cobra.Command{Use: "test"}
		addFilterFlags(c)

		spec, err := filterSpecFromFlags(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.SortBy != domain.SortBySize || spec.SortOrder != domain.SortDesc {
			t.Errorf("Expected size/desc from config, got %s/%s", spec.SortBy, spec.SortOrder)
		}
		if !spec.Category.IsAll() {
			t.Errorf("Expected all categories, got %s", spec.Category)
		}
	})

	t.Run("flags override config", func(t *testing.T) {
		c := &cobra.Command{Use: "test"}
		addFilterFlags(c)
		_ = c.Flags().Set("sort", "date")
		_ = c.Flags().Set("order", "asc")
		_ = c.Flags().Set("category", "Maps")
		_ = c.Flags().Set("search", "town")
		_ = c.Flags().Set("reverse", "true")

		spec, err := filterSpecFromFlags(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.SortBy != domain.SortByDate {
			t.Errorf("Expected date sort, got %s", spec.SortBy)
		}
		if spec.SortOrder != domain.SortDesc {
			t.Errorf("Expected reverse to flip asc to desc, got %s", spec.SortOrder)
		}
		if spec.Category != domain.FilterFor(domain.CategoryMaps) {
			t.Errorf("Expected maps filter, got %s", spec.Category)
		}
		if spec.Search != "town" {
			t.Errorf("Expected search 'town', got %q", spec.Search)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		c := &cobra.Command{Use: "test"}
		addFilterFlags(c)
		_ = c.Flags().Set("category", "boats")

		if _, err := filterSpecFromFlags(c); err == nil {
			t.Error("Expected error for unknown category")
		}
	})
}
