package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamal-hamza/gallery/internal/core/domain"
)

// EnvAssetRoot overrides the configured asset root
const EnvAssetRoot = "GALLERY_ASSET_ROOT"

// Library represents the asset root and its fixed category folders
type Library struct {
	RootPath   string
	ConfigPath string
}

// New creates a Library rooted at root. An empty root falls back to the
// GALLERY_ASSET_ROOT environment variable and then to the XDG data directory.
func New(root string) (*Library, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", err)
	}

	if root == "" {
		root = os.Getenv(EnvAssetRoot)
	}
	if root == "" {
		root, err = defaultRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to determine asset root: %w", err)
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve asset root %s: %w", root, err)
	}

	return &Library{
		RootPath:   abs,
		ConfigPath: configPath,
	}, nil
}

// defaultRoot returns the data directory used when nothing else is set
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func defaultRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "gallery", "public"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "gallery", "public"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "gallery", "public"), nil
}

// DefaultConfigPath returns the location of config.yaml
func DefaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gallery", "config.yaml"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "gallery-config", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "gallery", "config.yaml"), nil
}

// CategoryPath returns the directory scanned for a category
func (l *Library) CategoryPath(category domain.Category) string {
	return filepath.Join(l.RootPath, string(category))
}

// AssetPath returns the full path of a file inside a category
func (l *Library) AssetPath(category domain.Category, name string) string {
	return filepath.Join(l.CategoryPath(category), name)
}

// Initialize creates the root and every category folder if missing
func (l *Library) Initialize() error {
	directories := []string{l.RootPath}
	for _, c := range domain.AllCategories() {
		directories = append(directories, l.CategoryPath(c))
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the asset root is an existing directory
func (l *Library) Exists() bool {
	info, err := os.Stat(l.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// MissingCategories lists categories whose folder is absent
func (l *Library) MissingCategories() []domain.Category {
	var missing []domain.Category
	for _, c := range domain.AllCategories() {
		info, err := os.Stat(l.CategoryPath(c))
		if err != nil || !info.IsDir() {
			missing = append(missing, c)
		}
	}
	return missing
}
