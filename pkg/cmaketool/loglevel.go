package cmaketool

import "fmt"

// LogLevel is the severity threshold passed to cmake-lint.
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// DefaultLogLevel is used when lint is invoked without --log-level.
const DefaultLogLevel = LogLevelWarning

// ParseLogLevel converts a string into a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch LogLevel(s) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return LogLevel(s), nil
	default:
		return "", fmt.Errorf("invalid log level %q: use one of 'debug', 'info', 'warning', 'error'", s)
	}
}
