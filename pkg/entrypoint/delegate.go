package entrypoint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ToolBinaryName is the name of the stage-two binary this entrypoint delegates to.
const ToolBinaryName = "run-cmake-tool"

// ToolDirEnvVar names the directory containing the run-cmake-tool binary.
// Empty or unset falls back to the current directory.
const ToolDirEnvVar = "RUN_CMAKE_TOOL_DIR"

// Exit codes for delegation failures. Successful delegation returns the
// child's own exit code verbatim.
const (
	// ExitToolNotFound indicates the run-cmake-tool binary does not exist
	// at the resolved path.
	ExitToolNotFound = 101

	// ExitFailedToRun indicates the binary exists but could not be
	// launched or waited on.
	ExitFailedToRun = 102
)

// EnvGetter abstracts environment lookup for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the actual process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// FileStater abstracts file stat for testability.
type FileStater interface {
	Stat(path string) (os.FileInfo, error)
}

// RealFileStater uses actual os.Stat.
type RealFileStater struct{}

func (r *RealFileStater) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Launcher starts the tool binary and waits for it.
type Launcher interface {
	// Run returns the child's exit code, or a non-nil error if the child
	// could not be started or waited on at all.
	Run(path string, args ...string) (int, error)
}

// RealLauncher runs the child wired to the parent's standard streams, so
// its output reaches the CI log directly and is never captured here.
type RealLauncher struct{}

func (l *RealLauncher) Run(path string, args ...string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}

// MockLauncher is a test double for Launcher.
type MockLauncher struct {
	RunFunc func(path string, args ...string) (int, error)
	Paths   []string
	Args    [][]string
}

func (m *MockLauncher) Run(path string, args ...string) (int, error) {
	m.Paths = append(m.Paths, path)
	m.Args = append(m.Args, args)
	return m.RunFunc(path, args...)
}

// Delegator resolves the run-cmake-tool binary and runs it with a
// converted argument vector.
type Delegator struct {
	Logging  LoggingOptions
	Env      EnvGetter
	Stat     FileStater
	Launcher Launcher
	Out      io.Writer
}

// ToolPath composes the path to the run-cmake-tool binary from the
// environment-provided directory, falling back to the current directory.
func (d *Delegator) ToolPath() string {
	dir, _ := d.Env.LookupEnv(ToolDirEnvVar)
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, ToolBinaryName)
}

// Run launches run-cmake-tool with args and returns the exit code for this
// process: the child's code on normal delegation, ExitToolNotFound when the
// binary is missing, ExitFailedToRun when it could not be launched.
func (d *Delegator) Run(args []string) int {
	path := d.ToolPath()

	info, err := d.Stat.Stat(path)
	if err != nil || info.IsDir() {
		d.printf("Error: The %s binary was not found at the expected path: %s\n", ToolBinaryName, path)
		return ExitToolNotFound
	}

	d.printf("Running command: %s %s\n", path, strings.Join(args, " "))

	code, err := d.Launcher.Run(path, args...)
	if err != nil {
		d.printf("Error: An exception occurred while calling %s: %v\n", ToolBinaryName, err)
		return ExitFailedToRun
	}
	return code
}

// printf writes to Out unless quiet mode suppresses the entrypoint's echo.
func (d *Delegator) printf(format string, args ...interface{}) {
	if d.Logging.Quiet {
		return
	}
	fmt.Fprintf(d.Out, format, args...)
}
