package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/adapters/watcher"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes to the category folders as they happen",
	Long: `Watch the five category folders and report image files being added,
modified or removed. Bursts of events are grouped using watch_debounce_ms.

Use --quiet to print only the catalog total after each change.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Only print the catalog total after each change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !appLibrary.Exists() {
		fmt.Println(ui.FormatError("Asset root not found: " + appLibrary.RootPath))
		return fmt.Errorf("nothing to watch")
	}

	fmt.Println(ui.FormatRocket(ui.IconWatch + " Watching " + appLibrary.RootPath))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	w := watcher.New(appLibrary, appConfig.WatchDebounce(), appLogger)
	err := w.Run(ctx, func(changes []watcher.Change) {
		stamp := time.Now().Format(time.TimeOnly)
		if !watchQuiet {
			for _, c := range changes {
				fmt.Printf("%s %-9s %s/%s\n", ui.FormatMuted(stamp), watcher.OpString(c.Op), c.Category, c.Name)
			}
		}

		resp, err := catalogService.ListAll(ctx)
		if err != nil {
			fmt.Println(ui.FormatError("Rescan failed: " + err.Error()))
			return
		}
		fmt.Println(ui.FormatInfo(fmt.Sprintf("%s catalog now has %d assets", stamp, resp.Total)))
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatMuted("Watcher stopped"))
	return nil
}
