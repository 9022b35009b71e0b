package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "run-cmake-tool",
	Short:   "Run cmake-format and cmake-lint over a directory tree",
	Long:    "run-cmake-tool discovers every CMakeLists.txt file under a directory and runs cmake-format or cmake-lint against each one.",
	Version: Version,
	// Runtime failures already carry their own message; repeating the
	// usage text would bury it in the CI log.
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
