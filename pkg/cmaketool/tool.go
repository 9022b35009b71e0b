// Package cmaketool runs cmake-format and cmake-lint over a directory tree
// of CMakeLists.txt files, one external process per file, and folds the
// per-file outcomes into a single exit code.
package cmaketool

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Si1ver/run-cmake-format/pkg/check"
	"github.com/Si1ver/run-cmake-format/pkg/cmakefiles"
)

// External tool names resolved on PATH.
const (
	FormatTool = "cmake-format"
	LintTool   = "cmake-lint"
)

// prepare runs the shared preamble of both operation modes: validate the
// root directory, resolve the tool on PATH, discover CMakeLists.txt files,
// and query the tool's version. Returns the discovered files and ExitSuccess,
// or nil and the exit code to abort with.
func prepare(out io.Writer, runner Runner, tool, root string) ([]string, int) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(out, "Error: The path '%s' is not a valid directory.\n", root)
		return nil, ExitInvalidArguments
	}

	if _, err := runner.LookPath(tool); err != nil {
		fmt.Fprintf(out, "Error: %s is not installed or not found in PATH.\n", tool)
		return nil, ExitToolNotFound
	}

	files, err := cmakefiles.Discover(root)
	if err != nil {
		fmt.Fprintf(out, "Error: Failed to search for CMakeLists.txt files: %v\n", err)
		return nil, ExitFailure
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "Error: No CMakeLists.txt files found in %s.\n", root)
		return nil, ExitNoCMakeFiles
	}

	stdout, stderr, err := runner.RunCommand(tool, "--version")
	if err != nil {
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = err.Error()
		}
		fmt.Fprintf(out, "Error: Failed to get %s version: %s\n", tool, detail)
		return nil, ExitFailure
	}
	fmt.Fprintf(out, "%s version: %s\n", tool, strings.TrimSpace(stdout))

	return files, ExitSuccess
}

// addOutput records the tool's captured output as detail lines.
func addOutput(r *check.Result, stdout, stderr string) {
	if s := strings.TrimSpace(stdout); s != "" {
		r.AddDetailf("stdout: %s", s)
	}
	if s := strings.TrimSpace(stderr); s != "" {
		r.AddDetailf("stderr: %s", s)
	}
}
