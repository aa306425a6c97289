package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/core/services"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Fuzzy-find an asset and copy its URL",
	Long: `Open an interactive fuzzy finder over the catalog.

The usual view flags (--search, --category, --sort, --order) narrow the list
before the finder opens. The chosen asset's URL is copied to the clipboard.`,
	RunE: runPick,
}

func init() {
	addFilterFlags(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	spec, err := filterSpecFromFlags(cmd)
	if err != nil {
		return err
	}

	ctx := getContext()
	svc := services.NewFilterService(catalogSource())
	resp, err := svc.Execute(ctx, services.FilterRequest{Spec: spec})
	if err != nil {
		return err
	}
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No matching assets found."))
		return nil
	}

	assets := resp.Assets
	idx, err := fuzzyfinder.Find(
		assets,
		func(i int) string {
			a := assets[i]
			return fmt.Sprintf("%s  [%s]", a.Name, a.Category)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			a := assets[i]

			var s strings.Builder
			s.WriteString(fmt.Sprintf("File: %s\n", ui.StyleBold.Render(a.Name)))
			s.WriteString(fmt.Sprintf("Category: %s\n", a.Category))
			s.WriteString(fmt.Sprintf("Size: %s\n", ui.FormatSize(a.Size)))
			s.WriteString(fmt.Sprintf("Modified: %s (%s)\n", a.LastModified.Format("Jan 02, 2006 15:04"), ui.FormatAge(a.LastModified)))
			s.WriteString(fmt.Sprintf("URL: %s\n", a.URL))
			s.WriteString(fmt.Sprintf("Path: %s\n", appLibrary.AssetPath(a.Category, a.Name)))
			return s.String()
		}),
	)
	if err != nil {
		fmt.Println(ui.FormatInfo("Selection cancelled."))
		return nil
	}

	selected := assets[idx]
	fmt.Println(ui.FormatSuccess("Selected: " + selected.Name))
	fmt.Println(ui.StyleBold.Render(selected.URL))

	if err := clipboard.WriteAll(selected.URL); err != nil {
		fmt.Println(ui.FormatMuted("(Clipboard access failed)"))
	} else {
		fmt.Println(ui.FormatMuted("(URL copied)"))
	}

	return nil
}
