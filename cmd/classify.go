package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var (
	classifyMove     bool
	classifyCategory string
)

var classifyCmd = &cobra.Command{
	Use:   "classify FILE...",
	Short: "Suggest a category for loose image files",
	Long: `Guess the category of each file from keywords in its name:

  vehicle, car, truck      -> vehicles
  item, weapon, tool       -> items
  loading, splash          -> loadingscreen
  map, location            -> maps
  anything else            -> other

With --move the files are moved into <root>/<category>/.
Use --category to force a category instead of guessing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVarP(&classifyMove, "move", "m", false, "Move files into their category folder")
	classifyCmd.Flags().StringVarP(&classifyCategory, "category", "c", "", "Use this category instead of guessing")
}

func runClassify(cmd *cobra.Command, args []string) error {
	var forced domain.Category
	if classifyCategory != "" {
		c, err := domain.ParseCategory(classifyCategory)
		if err != nil {
			return err
		}
		forced = c
	}

	if classifyMove && !appLibrary.Exists() {
		fmt.Println(ui.FormatError("Asset root not found: " + appLibrary.RootPath))
		fmt.Println(ui.FormatInfo("Run 'gallery init' first"))
		return domain.ErrCatalogUnavailable
	}

	failed := 0
	for _, path := range args {
		name := filepath.Base(path)
		if !domain.IsSupportedExtension(name) {
			fmt.Println(ui.FormatWarning(name + ": unsupported extension, skipped"))
			continue
		}

		category := forced
		if category == "" {
			category = domain.GuessCategory(name)
		}

		if !classifyMove {
			fmt.Printf("%s %s\n", ui.StyleAccent.Render(fmt.Sprintf("%-14s", category)), name)
			continue
		}

		if err := moveIntoCategory(path, category); err != nil {
			fmt.Println(ui.FormatError(err.Error()))
			failed++
			continue
		}
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("%s -> %s", name, domain.AssetURL(category, name))))
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be moved", failed)
	}
	return nil
}

func moveIntoCategory(path string, category domain.Category) error {
	name := filepath.Base(path)
	dir := appLibrary.CategoryPath(category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	dest := filepath.Join(dir, name)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("%s already exists in %s", name, category)
	}

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("failed to move %s: %w", name, err)
	}
	return nil
}
