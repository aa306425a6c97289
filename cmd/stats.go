package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/core/services"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var statsChart string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics per category",
	Long: `Scan the asset root and summarize it.

Includes:
  - Asset count and total size per category
  - Largest and most recently modified asset
  - Optional HTML bar chart (--chart report.html)`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "Write an HTML bar chart of the per-category counts to this file")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := catalogService.ListAll(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to scan " + appLibrary.RootPath))
		return err
	}

	fmt.Println(ui.FormatTitle("Catalog Statistics"))
	fmt.Println()

	totals := make([]ui.CategoryTotal, len(resp.Categories))
	for i, c := range resp.Categories {
		totals[i] = ui.CategoryTotal{Category: c.Category, Count: c.Count, Bytes: c.Bytes}
	}
	fmt.Println(ui.CategoryTable(totals))
	fmt.Println()

	if missing := appLibrary.MissingCategories(); len(missing) > 0 {
		fmt.Println(ui.FormatWarning("Missing category folders:"))
		fmt.Print(ui.RenderCategoryList(missing))
		fmt.Println()
	}

	if resp.Total > 0 {
		largest := resp.Assets[0]
		newest := resp.Assets[0]
		for _, a := range resp.Assets[1:] {
			if a.Size > largest.Size {
				largest = a
			}
			if a.LastModified.After(newest.LastModified) {
				newest = a
			}
		}
		fmt.Println(ui.RenderKeyValue("Largest", fmt.Sprintf("%s (%s)", largest.URL, ui.FormatSize(largest.Size))))
		fmt.Println(ui.RenderKeyValue("Newest", fmt.Sprintf("%s (%s)", newest.URL, ui.FormatAge(newest.LastModified))))
		fmt.Println()
	}

	if statsChart != "" {
		f, err := os.Create(statsChart)
		if err != nil {
			return fmt.Errorf("failed to create chart file: %w", err)
		}
		defer f.Close()

		if err := renderCategoryChart(f, resp.Categories); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		fmt.Println(ui.FormatSuccess("Chart written to " + statsChart))
	}

	return nil
}

// renderCategoryChart writes a bar chart of counts and sizes (in KiB)
func renderCategoryChart(w io.Writer, counts []services.CategoryCount) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Assets per category",
			Subtitle: appLibrary.RootPath,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(counts))
	countData := make([]opts.BarData, len(counts))
	sizeData := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = string(c.Category)
		countData[i] = opts.BarData{Value: c.Count}
		sizeData[i] = opts.BarData{Value: c.Bytes / 1024}
	}

	bar.SetXAxis(labels).
		AddSeries("files", countData).
		AddSeries("KiB", sizeData)

	return bar.Render(w)
}
