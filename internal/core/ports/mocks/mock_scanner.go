package mocks

import (
	"context"
	"sync"

	"github.com/kamal-hamza/gallery/internal/core/domain"
)

// MockScanner is a mock implementation of the CategoryScanner interface for testing
type MockScanner struct {
	mu       sync.RWMutex
	root     bool
	assets   map[domain.Category][]domain.Asset
	failures map[domain.Category]error
	calls    map[domain.Category]int
}

// NewMockScanner creates a mock scanner whose root exists and holds no assets
func NewMockScanner() *MockScanner {
	return &MockScanner{
		root:     true,
		assets:   make(map[domain.Category][]domain.Asset),
		failures: make(map[domain.Category]error),
		calls:    make(map[domain.Category]int),
	}
}

// SetRootExists toggles whether the asset root resolves
func (m *MockScanner) SetRootExists(exists bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.root = exists
}

// Add places assets in a category
func (m *MockScanner) Add(category domain.Category, assets ...domain.Asset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[category] = append(m.assets[category], assets...)
}

// Fail makes scans of a category return err
func (m *MockScanner) Fail(category domain.Category, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[category] = err
}

// Calls returns how often a category was scanned
func (m *MockScanner) Calls(category domain.Category) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[category]
}

// RootExists reports the configured root state
func (m *MockScanner) RootExists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// ScanCategory returns the assets added for the category
func (m *MockScanner) ScanCategory(ctx context.Context, category domain.Category) ([]domain.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls[category]++
	if err := m.failures[category]; err != nil {
		return nil, err
	}
	out := make([]domain.Asset, len(m.assets[category]))
	copy(out, m.assets[category])
	return out, nil
}

// MockCatalogSource is a CatalogSource returning a fixed catalog or error
type MockCatalogSource struct {
	mu     sync.Mutex
	Assets []domain.Asset
	Err    error
	calls  int
}

// Catalog returns the configured assets
func (m *MockCatalogSource) Catalog(ctx context.Context) ([]domain.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Asset, len(m.Assets))
	copy(out, m.Assets)
	return out, nil
}

// Calls returns how many times Catalog was invoked
func (m *MockCatalogSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
