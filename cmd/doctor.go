package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/pkg/ui"
)

var errCheckWarning = errors.New("warning")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your asset root and configuration",
	Long: `Diagnose issues with your gallery setup.

Checks for:
  - Asset root and category folders
  - Files the scanner will ignore
  - Configuration file and listen address
  - A system image viewer for 'gallery open'`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("Gallery Doctor"))
	fmt.Println()

	// 1. Asset root
	checkStep("Asset Root", func() error {
		if !appLibrary.Exists() {
			return fmt.Errorf("not found at %s (run 'gallery init')", appLibrary.RootPath)
		}
		return nil
	})

	for _, c := range domain.AllCategories() {
		checkStep("Category folder: "+string(c), func() error {
			info, err := os.Stat(appLibrary.CategoryPath(c))
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: missing (contributes no assets)", errCheckWarning)
			}
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", appLibrary.CategoryPath(c))
			}
			return nil
		})
	}

	// 2. Content
	checkStep("Ignored files", func() error {
		ignored := ignoredFiles()
		if len(ignored) == 0 {
			return nil
		}
		for _, name := range ignored {
			fmt.Printf("    %s\n", ui.StyleMuted.Render(name))
		}
		return fmt.Errorf("%w: %d files are not served (supported: %s)",
			errCheckWarning, len(ignored), strings.Join(domain.SupportedExtensions, ", "))
	})

	checkStep("Catalog scan", func() error {
		resp, err := catalogService.ListAll(getContext())
		if err != nil {
			return err
		}
		fmt.Printf("    %s\n", ui.StyleMuted.Render(fmt.Sprintf("%d assets found", resp.Total)))
		return nil
	})

	// 3. Config
	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appLibrary.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("%w: missing at %s (using defaults)", errCheckWarning, appLibrary.ConfigPath)
		}
		return nil
	})

	checkStep("Listen Address", func() error {
		if _, _, err := net.SplitHostPort(appConfig.ListenAddr); err != nil {
			return fmt.Errorf("invalid listen_addr %q: %w", appConfig.ListenAddr, err)
		}
		return nil
	})

	// 4. Environment
	checkStep("Image Viewer", func() error {
		name, _ := systemOpener()
		if _, err := exec.LookPath(name); err != nil {
			return fmt.Errorf("%w: %s not found (required for 'gallery open')", errCheckWarning, name)
		}
		return nil
	})

	checkStep("EDITOR Variable", func() error {
		if os.Getenv("EDITOR") == "" {
			return fmt.Errorf("%w: not set (using fallback 'vi')", errCheckWarning)
		}
		return nil
	})
}

// ignoredFiles lists regular files in the asset root and category folders
// that a scan will never pick up
func ignoredFiles() []string {
	var ignored []string

	if entries, err := os.ReadDir(appLibrary.RootPath); err == nil {
		for _, e := range entries {
			if !e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
				ignored = append(ignored, e.Name())
			}
		}
	}

	for _, c := range domain.AllCategories() {
		entries, err := os.ReadDir(appLibrary.CategoryPath(c))
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			if e.IsDir() || !domain.IsSupportedExtension(name) {
				ignored = append(ignored, string(c)+"/"+name)
			}
		}
	}
	return ignored
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	switch {
	case err == nil:
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	case errors.Is(err, errCheckWarning):
		fmt.Printf("%s %s\n", ui.StyleWarning.Render("!"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(strings.TrimPrefix(err.Error(), errCheckWarning.Error()+": ")))
	default:
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}
