package entrypoint

import (
	"reflect"
	"testing"

	"github.com/Si1ver/run-cmake-format/pkg/cmaketool"
)

func TestParseBool(t *testing.T) {
	truthy := []string{"true", "True", "TRUE", "yes", "Yes", "YES", "1"}
	for _, input := range truthy {
		got, err := ParseBool(input)
		if err != nil {
			t.Errorf("ParseBool(%q) error = %v", input, err)
		}
		if !got {
			t.Errorf("ParseBool(%q) = false, want true", input)
		}
	}

	falsy := []string{"false", "False", "FALSE", "no", "No", "NO", "0"}
	for _, input := range falsy {
		got, err := ParseBool(input)
		if err != nil {
			t.Errorf("ParseBool(%q) error = %v", input, err)
		}
		if got {
			t.Errorf("ParseBool(%q) = true, want false", input)
		}
	}

	invalid := []string{"", "2", "maybe", "on", "off", "t", "f", "yes "}
	for _, input := range invalid {
		if _, err := ParseBool(input); err == nil {
			t.Errorf("ParseBool(%q) expected error", input)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    Command
		wantErr bool
	}{
		{"format", CommandFormat, false},
		{"lint", CommandLint, false},
		{"Format", "", true},
		{"check", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCommand(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCommand(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewLoggingOptions(t *testing.T) {
	tests := []struct {
		verbose, quiet bool
		want           LoggingOptions
	}{
		{false, false, LoggingOptions{Verbose: false, Quiet: false}},
		{true, false, LoggingOptions{Verbose: true, Quiet: false}},
		{false, true, LoggingOptions{Verbose: false, Quiet: true}},
		// Quiet wins: verbose is forced off.
		{true, true, LoggingOptions{Verbose: false, Quiet: true}},
	}

	for _, tt := range tests {
		got := NewLoggingOptions(tt.verbose, tt.quiet)
		if got != tt.want {
			t.Errorf("NewLoggingOptions(%v, %v) = %+v, want %+v", tt.verbose, tt.quiet, got, tt.want)
		}
	}
}

func TestConvertArgs(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			name: "format without apply drops log level",
			req:  Request{Command: CommandFormat, Path: "some/dir/path", Apply: false, LogLevel: cmaketool.LogLevelInfo},
			want: []string{"format", "some/dir/path"},
		},
		{
			name: "format with apply",
			req:  Request{Command: CommandFormat, Path: "some/dir/path", Apply: true, LogLevel: cmaketool.LogLevelInfo},
			want: []string{"format", "--apply", "some/dir/path"},
		},
		{
			name: "lint drops apply",
			req:  Request{Command: CommandLint, Path: "some/dir/path", Apply: true, LogLevel: cmaketool.LogLevelError},
			want: []string{"lint", "--log-level", "error", "some/dir/path"},
		},
		{
			name: "lint debug level",
			req:  Request{Command: CommandLint, Path: ".", LogLevel: cmaketool.LogLevelDebug},
			want: []string{"lint", "--log-level", "debug", "."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertArgs(tt.req)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ConvertArgs(%+v) = %v, want %v", tt.req, got, tt.want)
			}
			// The conversion is deterministic.
			again := ConvertArgs(tt.req)
			if !reflect.DeepEqual(got, again) {
				t.Errorf("ConvertArgs(%+v) not deterministic: %v vs %v", tt.req, got, again)
			}
		})
	}
}

func TestConvertArgs_UnknownCommandPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ConvertArgs with unknown command should panic")
		}
	}()
	ConvertArgs(Request{Command: Command("fix"), Path: "."})
}
