package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Si1ver/run-cmake-format/pkg/cmaketool"
)

var formatApply bool

var formatCmd = &cobra.Command{
	Use:   "format <path>",
	Short: "Format CMakeLists.txt files or check if they are formatted",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().BoolVar(&formatApply, "apply", false, "write changes to files")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	op := &cmaketool.FormatOp{
		Path:   args[0],
		Apply:  formatApply,
		Runner: &cmaketool.RealRunner{},
		Out:    os.Stdout,
	}

	if code := op.Run(); code != cmaketool.ExitSuccess {
		os.Exit(code)
	}
	return nil
}
