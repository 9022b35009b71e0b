package cmaketool

// Exit codes returned by the run-cmake-tool CLI.
// These constants allow CI scripts to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates every discovered file was processed without failure.
	ExitSuccess = 0

	// ExitFailure indicates at least one per-file invocation failed,
	// or the tool's version query failed.
	ExitFailure = 1

	// ExitToolNotFound indicates the required external tool is not on PATH.
	ExitToolNotFound = 11

	// ExitInvalidArguments indicates the given path is not an existing directory.
	ExitInvalidArguments = 12

	// ExitNoCMakeFiles indicates no CMakeLists.txt files were found under the path.
	ExitNoCMakeFiles = 13
)
