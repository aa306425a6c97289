package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/services"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var openCategory string

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open [query]",
	Short: "Open an asset in the system image viewer",
	Long: `Open an asset in the default image viewer, found by name.

When several assets match, you are asked to pick one.

Examples:
  gallery open truck
  gallery open splash --category loadingscreen`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openCategory, "category", "c", "all", "Restrict the search to one category")
}

func runOpen(cmd *cobra.Command, args []string) error {
	query := args[0]

	category, err := domain.ParseCategoryFilter(openCategory)
	if err != nil {
		return err
	}

	spec := domain.DefaultFilterSpec()
	spec.Search = query
	spec.Category = category

	ctx := getContext()
	resp, err := filterService.Execute(ctx, services.FilterRequest{Spec: spec})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to search assets"))
		return err
	}

	// Handle no results
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No assets found matching: " + query))
		return nil
	}

	selected := resp.Assets[0]
	if resp.Total > 1 {
		fmt.Println(ui.FormatInfo(fmt.Sprintf("Found %d matches:", resp.Total)))
		fmt.Println()

		for i, a := range resp.Assets {
			fmt.Printf("%d. %s %s\n",
				i+1,
				ui.StyleBold.Render(a.Name),
				ui.StyleMuted.Render("("+string(a.Category)+", "+ui.FormatSize(a.Size)+")"))
		}
		fmt.Println()

		var selection int
		for {
			fmt.Print(ui.StyleInfo.Render("Select an asset (1-" + strconv.Itoa(resp.Total) + "): "))

			if _, err := fmt.Scanln(&selection); err != nil {
				// Clear the buffer on input error
				var discard string
				fmt.Scanln(&discard)
				fmt.Println(ui.FormatWarning("Invalid input. Please enter a number."))
				continue
			}

			if selection < 1 || selection > resp.Total {
				fmt.Println(ui.FormatWarning(fmt.Sprintf("Please enter a number between 1 and %d.", resp.Total)))
				continue
			}
			break
		}
		fmt.Println()
		selected = resp.Assets[selection-1]
	}

	path := appLibrary.AssetPath(selected.Category, selected.Name)
	fmt.Println(ui.FormatInfo("Opening: " + selected.URL))

	if err := openFile(path); err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		fmt.Println(ui.FormatInfo("File is at: " + path))
		return err
	}
	return nil
}
