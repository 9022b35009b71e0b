package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Si1ver/run-cmake-format/pkg/cmaketool"
)

var lintLogLevel string

var lintCmd = &cobra.Command{
	Use:   "lint <path>",
	Short: "Lint CMakeLists.txt files",
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().StringVar(&lintLogLevel, "log-level", string(cmaketool.DefaultLogLevel), "log level for cmake-lint (error, warning, info, debug)")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	level, err := cmaketool.ParseLogLevel(lintLogLevel)
	if err != nil {
		return err
	}

	op := &cmaketool.LintOp{
		Path:     args[0],
		LogLevel: level,
		Runner:   &cmaketool.RealRunner{},
		Out:      os.Stdout,
	}

	if code := op.Run(); code != cmaketool.ExitSuccess {
		os.Exit(code)
	}
	return nil
}
