package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/adapters/httpapi"
	"github.com/kamal-hamza/gallery/internal/adapters/watcher"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog API and the asset files",
	Long: `Start the HTTP server.

Routes:
  GET /api/images       Full catalog as a JSON array, sorted by name
  GET /api/categories   Asset counts per category
  GET /healthz          Liveness check
  GET /<category>/<file> The asset files themselves

Every catalog request rescans the asset root unless cache_ttl_seconds is
set in the config. With --watch, filesystem changes drop the cached catalog
immediately.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default from config, :3000)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Watch category folders and invalidate the cache on change")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := appConfig.ListenAddr
	if cmd.Flags().Changed("addr") {
		addr = serveAddr
	}
	if !cmd.Flags().Changed("watch") {
		serveWatch = appConfig.Watch
	}

	if !appLibrary.Exists() {
		fmt.Println(ui.FormatWarning("Asset root not found: " + appLibrary.RootPath))
		fmt.Println(ui.FormatInfo("Run 'gallery init' to create it; /api/images will fail until then"))
	}

	if cachedCatalog.Enabled() {
		go cachedCatalog.Start()
		defer cachedCatalog.Stop()
	}

	if serveWatch {
		w := watcher.New(appLibrary, appConfig.WatchDebounce(), appLogger)
		go func() {
			err := w.Run(ctx, func(changes []watcher.Change) {
				cachedCatalog.Invalidate()
				for _, c := range changes {
					appLogger.Info("asset changed", "category", c.Category, "name", c.Name, "op", watcher.OpString(c.Op))
				}
			})
			if err != nil {
				appLogger.Warn("watcher stopped", "error", err)
			}
		}()
	}

	srv := httpapi.New(cachedCatalog, httpapi.Options{
		Addr:       addr,
		AssetRoot:  appLibrary.RootPath,
		RateLimit:  appConfig.RateLimit,
		RateBurst:  appConfig.RateBurst,
		TrustProxy: appConfig.TrustProxy,
	}, appLogger)

	fmt.Println(ui.FormatRocket("Serving " + appLibrary.RootPath + " on " + addr))
	return srv.Run(ctx)
}
