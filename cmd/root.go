package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/adapters/cache"
	"github.com/kamal-hamza/gallery/internal/adapters/repository"
	"github.com/kamal-hamza/gallery/internal/core/services"
	"github.com/kamal-hamza/gallery/internal/logging"
	"github.com/kamal-hamza/gallery/pkg/config"
	"github.com/kamal-hamza/gallery/pkg/library"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var (
	// Global flags
	rootFlag     string
	configFlag   string
	logLevelFlag string

	// Global instances
	appConfig  *config.Config
	appLibrary *library.Library
	appLogger  *slog.Logger

	// Services
	catalogService *services.CatalogService
	filterService  *services.FilterService

	// Adapters
	assetScanner  *repository.FileAssetScanner
	cachedCatalog *cache.CachedCatalog
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Gallery - browse image assets by category",
	Long: ui.StyleTitle.Render("Gallery") + " - Asset Catalog\n\n" +
		"Scans the category folders of an asset root (items, loadingscreen, maps,\n" +
		"other, vehicles), serves the catalog over HTTP and lets you search,\n" +
		"filter and sort it from the terminal.",
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Asset root directory (overrides config and "+library.EnvAssetRoot+")")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and wires the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	configPath := configFlag
	if configPath == "" {
		p, err := library.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	level := cfg.LogLevel
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	appLogger = logging.New(os.Stderr, logging.Options{Level: level, Format: cfg.LogFormat})

	// Flag wins, then env (inside library.New), then config
	root := rootFlag
	if root == "" && os.Getenv(library.EnvAssetRoot) == "" {
		root = cfg.AssetRoot
	}
	lib, err := library.New(root)
	if err != nil {
		return fmt.Errorf("failed to initialize library: %w", err)
	}
	lib.ConfigPath = configPath
	appLibrary = lib

	// Commands that never touch the local catalog stop here
	switch cmd.Name() {
	case "init", "version", "config", "classify":
		return nil
	}

	assetScanner = repository.NewFileAssetScanner(appLibrary, appLogger)
	catalogService = services.NewCatalogService(assetScanner, appLogger, cfg.MaxWorkers)
	cachedCatalog = cache.NewCachedCatalog(catalogService, cfg.CacheTTL(), appLogger)
	filterService = services.NewFilterService(cachedCatalog)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
