package check

// Status represents the outcome of processing one file.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of one external tool invocation against one file.
type Result struct {
	Name    string   // e.g., "src/CMakeLists.txt"
	Status  Status   // OK or FAIL
	Details []string // human-readable details (tool output, hints)
	Err     error    // underlying error for failures
}

// OK returns true if the invocation succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
