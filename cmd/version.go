package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/store"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "edusmart", resolveVersion())

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Fprintf(out, "go:       %s\n", runtime.Version())
			fmt.Fprintf(out, "catalog:  %s.x\n", content.SupportedMajor)
			fmt.Fprintf(out, "snapshot: v%d\n", store.SnapshotVersion)
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "Also print the Go, catalog and snapshot versions")
}

// resolveVersion prefers the -ldflags version, then the module version
// recorded by go install.
func resolveVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}
