package cmaketool

import (
	"fmt"
	"io"

	"github.com/Si1ver/run-cmake-format/pkg/check"
	"github.com/Si1ver/run-cmake-format/pkg/output"
)

// LintOp runs cmake-lint over every CMakeLists.txt file under Path with
// the given severity threshold.
type LintOp struct {
	Path     string
	LogLevel LogLevel
	Runner   Runner
	Out      io.Writer
}

// Run executes the operation and returns its exit code. Every discovered
// file is attempted; a failing file never stops the remaining ones.
func (o *LintOp) Run() int {
	fmt.Fprintf(o.Out, "Starting %s in directory: %s\n", LintTool, o.Path)

	files, code := prepare(o.Out, o.Runner, LintTool, o.Path)
	if code != ExitSuccess {
		return code
	}

	fmt.Fprintf(o.Out, "Found %d CMakeLists.txt files. Linting files with log level: %s\n", len(files), o.LogLevel)

	haveErrors := false
	for _, file := range files {
		result := o.lintFile(file)
		output.FprintResult(o.Out, result)
		if !result.OK() {
			haveErrors = true
		}
	}

	if haveErrors {
		fmt.Fprintln(o.Out, "Error: Some files could not be linted correctly.")
		return ExitFailure
	}

	fmt.Fprintln(o.Out, "All files are linted successfully.")
	return ExitSuccess
}

func (o *LintOp) lintFile(path string) check.Result {
	result := check.Result{Name: path}

	stdout, stderr, err := o.Runner.RunCommand(LintTool, "--log-level", string(o.LogLevel), path)
	addOutput(&result, stdout, stderr)
	if err != nil {
		return result.Failf("lint failed: %v", err)
	}

	result.Status = check.StatusOK
	return result
}
