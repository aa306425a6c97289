package cmd

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kamal-hamza/gallery/pkg/library"
)

func TestIgnoredFiles(t *testing.T) {
	appLibrary = &library.Library{RootPath: t.TempDir()}
	if err := appLibrary.Initialize(); err != nil {
		t.Fatalf("failed to initialize library: %v", err)
	}

	files := []string{
		"stray.png",
		".DS_Store",
		"items/sword.png",
		"items/readme.txt",
		"maps/.hidden.png",
		"vehicles/truck.webp",
		"vehicles/icon.gif",
		"other/sub/nested.jpeg",
	}
	for _, rel := range files {
		path := filepath.Join(appLibrary.RootPath, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	got := ignoredFiles()
	slices.Sort(got)

	want := []string{"items/readme.txt", "other/sub", "stray.png", "vehicles/icon.gif"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestIgnoredFiles_MissingRoot(t *testing.T) {
	appLibrary = &library.Library{RootPath: filepath.Join(t.TempDir(), "missing")}
	if got := ignoredFiles(); len(got) != 0 {
		t.Errorf("expected nothing for a missing root, got %v", got)
	}
}

func TestSystemOpener(t *testing.T) {
	name, _ := systemOpener()
	if name == "" {
		t.Error("expected an opener command")
	}
}
