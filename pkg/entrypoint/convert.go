// Package entrypoint converts the fixed positional argument convention of a
// GitHub Actions job into the run-cmake-tool subcommand syntax and delegates
// to that binary. GitHub Actions workflow files cannot express conditionals,
// so every job passes all four positionals and the unused one is ignored.
package entrypoint

import (
	"fmt"
	"strings"

	"github.com/Si1ver/run-cmake-format/pkg/cmaketool"
)

// Command is an operation of the run-cmake-tool CLI.
type Command string

const (
	CommandFormat Command = "format"
	CommandLint   Command = "lint"
)

// ParseCommand converts a string into a Command.
func ParseCommand(s string) (Command, error) {
	switch Command(s) {
	case CommandFormat, CommandLint:
		return Command(s), nil
	default:
		return "", fmt.Errorf("invalid command %q: use 'format' or 'lint'", s)
	}
}

// ParseBool converts a CI-style boolean literal into a bool. The accepted
// lexicon is fixed: case-insensitive true/yes/1 and false/no/0. Anything
// else is an error, never a silent default.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean argument: %q is not a valid boolean, use 'true' or 'false'", s)
	}
}

// LoggingOptions holds the resolved verbosity of the entrypoint's own output.
// It governs only the entrypoint's echo; the delegated run-cmake-tool writes
// to the inherited stdout/stderr regardless.
type LoggingOptions struct {
	Verbose bool
	Quiet   bool
}

// NewLoggingOptions resolves the verbose/quiet collision: quiet wins and
// forces verbose off.
func NewLoggingOptions(verbose, quiet bool) LoggingOptions {
	return LoggingOptions{Verbose: verbose && !quiet, Quiet: quiet}
}

// Request is one normalized operation request.
type Request struct {
	Command  Command
	Path     string
	Apply    bool               // format only; ignored for lint
	LogLevel cmaketool.LogLevel // lint only; ignored for format
}

// ConvertArgs maps a request onto the argument vector of run-cmake-tool.
// The mapping is a pure function: format drops the log level, lint drops
// the apply flag.
func ConvertArgs(req Request) []string {
	switch req.Command {
	case CommandFormat:
		args := []string{"format"}
		if req.Apply {
			args = append(args, "--apply")
		}
		return append(args, req.Path)
	case CommandLint:
		return []string{"lint", "--log-level", string(req.LogLevel), req.Path}
	default:
		panic(fmt.Sprintf("unreachable command %q", req.Command))
	}
}
