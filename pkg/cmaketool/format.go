package cmaketool

import (
	"fmt"
	"io"

	"github.com/Si1ver/run-cmake-format/pkg/check"
	"github.com/Si1ver/run-cmake-format/pkg/output"
)

// FormatOp runs cmake-format over every CMakeLists.txt file under Path.
// With Apply unset it only checks formatting; with Apply set it rewrites
// files in place.
type FormatOp struct {
	Path   string
	Apply  bool
	Runner Runner
	Out    io.Writer
}

// Run executes the operation and returns its exit code. Every discovered
// file is attempted; a failing file never stops the remaining ones.
func (o *FormatOp) Run() int {
	fmt.Fprintf(o.Out, "Starting %s in directory: %s\n", FormatTool, o.Path)

	files, code := prepare(o.Out, o.Runner, FormatTool, o.Path)
	if code != ExitSuccess {
		return code
	}

	if o.Apply {
		fmt.Fprintf(o.Out, "Found %d CMakeLists.txt files. Formatting files...\n", len(files))
	} else {
		fmt.Fprintf(o.Out, "Found %d CMakeLists.txt files. Checking files are formatted...\n", len(files))
		fmt.Fprintln(o.Out, "No changes will be applied. Use --apply to write changes.")
	}

	haveErrors := false
	for _, file := range files {
		var result check.Result
		if o.Apply {
			result = o.applyFile(file)
		} else {
			result = o.checkFile(file)
		}
		output.FprintResult(o.Out, result)
		if !result.OK() {
			haveErrors = true
		}
	}

	if haveErrors {
		if o.Apply {
			fmt.Fprintln(o.Out, "Error: Some files could not be formatted correctly.")
		} else {
			fmt.Fprintln(o.Out, "Error: Some files are not formatted correctly. Use --apply to write changes.")
		}
		return ExitFailure
	}

	if o.Apply {
		fmt.Fprintln(o.Out, "All files formatted successfully.")
	} else {
		fmt.Fprintln(o.Out, "All files are formatted correctly.")
	}
	return ExitSuccess
}

// checkFile invokes cmake-format in check-only mode. No file is modified.
func (o *FormatOp) checkFile(path string) check.Result {
	result := check.Result{Name: path}

	stdout, stderr, err := o.Runner.RunCommand(FormatTool, "--check", path)
	addOutput(&result, stdout, stderr)
	if err != nil {
		return result.Fail("not formatted correctly", err)
	}

	result.Status = check.StatusOK
	return result
}

// applyFile invokes cmake-format to rewrite the file in place.
func (o *FormatOp) applyFile(path string) check.Result {
	result := check.Result{Name: path}

	stdout, stderr, err := o.Runner.RunCommand(FormatTool, path, "-o", path)
	addOutput(&result, stdout, stderr)
	if err != nil {
		return result.Failf("formatting failed: %v", err)
	}

	result.Status = check.StatusOK
	return result
}
