package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery/pkg/ui"
)

// Set with -ldflags "-X github.com/kamal-hamza/gallery/cmd.version=..."
var (
	version   = ""
	commit    = ""
	buildTime = ""
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the gallery build",
	Aliases: []string{"v"},
	Long: `Print the release, VCS revision and Go toolchain of this binary.

Values stamped at link time win; otherwise they are read from the module
build info embedded by "go build".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printBuild(cmd.OutOrStdout(), currentBuild(), versionShort)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the release")
}

// buildInfo describes the running binary
type buildInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	Modified  bool
}

func currentBuild() buildInfo {
	b := buildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		b = b.withModuleInfo(info)
	}
	if b.Version == "" {
		b.Version = "dev"
	}
	return b
}

// withModuleInfo fills fields left empty by ldflags from the embedded build info
func (b buildInfo) withModuleInfo(info *debug.BuildInfo) buildInfo {
	if b.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.BuildTime == "" {
				b.BuildTime = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	if info.GoVersion != "" {
		b.GoVersion = info.GoVersion
	}
	return b
}

func printBuild(w io.Writer, b buildInfo, short bool) {
	if short {
		fmt.Fprintln(w, b.Version)
		return
	}

	rev := b.Commit
	if rev == "" {
		rev = "unknown"
	} else if len(rev) > 12 {
		rev = rev[:12]
	}
	if b.Modified {
		rev += " (dirty)"
	}

	fmt.Fprintln(w, ui.FormatTitle("gallery "+b.Version))
	fmt.Fprintln(w, ui.RenderKeyValue("Commit", rev))
	if b.BuildTime != "" {
		fmt.Fprintln(w, ui.RenderKeyValue("Built", b.BuildTime))
	}
	fmt.Fprintln(w, ui.RenderKeyValue("Go", b.GoVersion))
}
