package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/adapters/client"
	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/ports"
	"github.com/kamal-hamza/gallery/internal/core/services"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var (
	listSearch   string
	listCategory string
	listSortBy   string
	listOrder    string
	listReverse  bool
	listJSON     bool
	listRemote   string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List assets with search, category filter and sorting",
	Aliases: []string{"ls"},
	Long: `List the assets of the catalog in a table.

The catalog is scanned from the local asset root, or fetched from a running
server with --remote.

Examples:
  gallery list
  gallery list --search truck
  gallery list --category items --sort size
  gallery list --sort date --reverse
  gallery list --remote http://localhost:3000 --json`,
	RunE: runList,
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the view as JSON")
}

// addFilterFlags registers the view flags shared by list, browse and pick
func addFilterFlags(c *cobra.Command) {
	c.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive substring of the file name")
	c.Flags().StringVarP(&listCategory, "category", "c", "all", "Category (all, items, loadingscreen, maps, other, vehicles)")
	// Sort defaults to "name", but we handle config override in filterSpecFromFlags
	c.Flags().StringVar(&listSortBy, "sort", "name", "Sort by field (name, size, date)")
	c.Flags().StringVar(&listOrder, "order", "asc", "Sort order (asc, desc)")
	c.Flags().BoolVar(&listReverse, "reverse", false, "Reverse the sort order")
	c.Flags().StringVar(&listRemote, "remote", "", "Fetch the catalog from a server instead of scanning locally")
}

// filterSpecFromFlags builds the filter spec from flags and config defaults
func filterSpecFromFlags(cmd *cobra.Command) (domain.FilterSpec, error) {
	spec := domain.DefaultFilterSpec()
	spec.Search = listSearch

	category, err := domain.ParseCategoryFilter(listCategory)
	if err != nil {
		return spec, err
	}
	spec.Category = category

	sortBy := listSortBy
	if !cmd.Flags().Changed("sort") {
		sortBy = appConfig.DefaultSort
	}
	spec.SortBy = domain.ParseSortKey(sortBy)
	if !spec.SortBy.Valid() {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Unknown sort key %q, keeping catalog order", sortBy)))
	}

	order := listOrder
	if !cmd.Flags().Changed("order") {
		order = appConfig.DefaultOrder
	}
	spec.SortOrder = domain.ParseSortOrder(order)
	if listReverse {
		spec.SortOrder = spec.SortOrder.Flip()
	}

	return spec, nil
}

// catalogSource picks the local scan or a remote server
func catalogSource() ports.CatalogSource {
	if listRemote != "" {
		return client.New(listRemote, appConfig.RequestTimeout())
	}
	return cachedCatalog
}

func runList(cmd *cobra.Command, args []string) error {
	spec, err := filterSpecFromFlags(cmd)
	if err != nil {
		return err
	}

	if listRemote == "" && !appLibrary.Exists() {
		fmt.Println(ui.FormatError("Asset root not found: " + appLibrary.RootPath))
		fmt.Println(ui.FormatInfo("Run 'gallery init' to create it"))
		return domain.ErrCatalogUnavailable
	}

	ctx := getContext()
	svc := filterService
	if listRemote != "" {
		svc = services.NewFilterService(catalogSource())
	}
	resp, err := svc.Execute(ctx, services.FilterRequest{Spec: spec})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list assets"))
		return err
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp.Assets)
	}

	if resp.Total == 0 {
		if spec.Search != "" || !spec.Category.IsAll() {
			fmt.Println(ui.FormatWarning("No assets match the current filter"))
		} else {
			fmt.Println(ui.FormatWarning("No assets found"))
			fmt.Println(ui.FormatInfo("Drop .png, .jpg, .jpeg or .webp files into " + appLibrary.RootPath + "/<category>/"))
		}
		return nil
	}

	title := "Assets"
	if !spec.Category.IsAll() {
		title = fmt.Sprintf("Assets (category: %s)", spec.Category)
	}
	fmt.Println(ui.FormatTitle(title))
	fmt.Println()

	fmt.Print(ui.AssetTable(resp.Assets))
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d assets (sorted by %s, %s)", resp.Total, spec.SortBy, spec.SortOrder)))

	return nil
}
