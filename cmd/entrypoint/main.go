package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Si1ver/run-cmake-format/pkg/cmaketool"
	"github.com/Si1ver/run-cmake-format/pkg/entrypoint"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	entryVerbose bool
	entryQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "entrypoint <command> <path> <apply> <log_level>",
	Short: "Convert GitHub Actions job arguments into run-cmake-tool syntax",
	Long: "This program converts GitHub Actions job arguments into a format suitable for run-cmake-tool.\n" +
		"Workflow files cannot express conditionals, so every job passes all four positional\n" +
		"arguments and the one not relevant to the chosen command is ignored.",
	Version: Version,
	Args:    cobra.ExactArgs(4),
	RunE:    runEntrypoint,
	// Runtime failures already carry their own message; repeating the
	// usage text would bury it in the CI log.
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&entryVerbose, "verbose", false, "enable additional logging output")
	rootCmd.Flags().BoolVar(&entryQuiet, "quiet", false, "disable all logging output, takes precedence over --verbose")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func runEntrypoint(cmd *cobra.Command, args []string) error {
	command, err := entrypoint.ParseCommand(args[0])
	if err != nil {
		return err
	}
	path := args[1]
	apply, err := entrypoint.ParseBool(args[2])
	if err != nil {
		return err
	}
	level, err := cmaketool.ParseLogLevel(args[3])
	if err != nil {
		return err
	}

	opts := entrypoint.NewLoggingOptions(entryVerbose, entryQuiet)
	if opts.Verbose {
		fmt.Printf("Running entrypoint for %s v.%s\n", entrypoint.ToolBinaryName, Version)
		switch command {
		case entrypoint.CommandFormat:
			fmt.Printf("Running format on path: %s with apply: %t\n", path, apply)
		case entrypoint.CommandLint:
			fmt.Printf("Running lint on path: %s with log level: %s\n", path, level)
		}
	}

	vector := entrypoint.ConvertArgs(entrypoint.Request{
		Command:  command,
		Path:     path,
		Apply:    apply,
		LogLevel: level,
	})

	d := &entrypoint.Delegator{
		Logging:  opts,
		Env:      &entrypoint.RealEnvGetter{},
		Stat:     &entrypoint.RealFileStater{},
		Launcher: &entrypoint.RealLauncher{},
		Out:      os.Stdout,
	}

	// The delegated tool's exit code becomes this process's exit code.
	os.Exit(d.Run(vector))
	return nil
}
