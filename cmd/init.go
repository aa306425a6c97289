package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/pkg/config"
	"github.com/kamal-hamza/gallery/pkg/library"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the asset root and its category folders",
	Long: `Create the asset root with one folder per category:
  - items/
  - loadingscreen/
  - maps/
  - other/
  - vehicles/

A default config.yaml is written if none exists. Existing folders and
files are left untouched.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	missing := appLibrary.MissingCategories()
	if appLibrary.Exists() && len(missing) == 0 {
		fmt.Println(ui.FormatWarning("Asset root already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + appLibrary.RootPath))
		return nil
	}

	fmt.Println(ui.FormatRocket("Initializing asset root..."))
	fmt.Println()

	if err := appLibrary.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize asset root"))
		return err
	}

	for _, c := range domain.AllCategories() {
		fmt.Println(ui.FormatSuccess(ui.IconFolder + " " + appLibrary.CategoryPath(c)))
	}

	if err := createDefaultConfig(appLibrary); err != nil {
		// Don't fail - config is optional
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
	}

	fmt.Println()
	fmt.Println(ui.FormatInfo("Drop images into the category folders, then run 'gallery serve' or 'gallery list'"))
	return nil
}

// createDefaultConfig writes config.yaml pointing at the library root,
// unless a config already exists
func createDefaultConfig(lib *library.Library) error {
	if _, err := os.Stat(lib.ConfigPath); err == nil {
		return nil
	}

	cfg := config.DefaultConfig()
	cfg.AssetRoot = lib.RootPath
	if err := cfg.Save(lib.ConfigPath); err != nil {
		return err
	}
	fmt.Println(ui.FormatSuccess("Config created: " + lib.ConfigPath))
	return nil
}
