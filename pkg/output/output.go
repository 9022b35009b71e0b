// Package output prints per-file results and run progress to the console.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/Si1ver/run-cmake-format/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// FprintResult writes a per-file result with colored status.
// Detail lines are indented to align under the status label.
func FprintResult(w io.Writer, r check.Result) {
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
		for _, d := range r.Details {
			fmt.Fprintf(w, "     %s\n", formatLabel(d))
		}
	} else {
		fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
		for _, d := range r.Details {
			fmt.Fprintf(w, "       %s\n", formatLabel(d))
		}
	}
}

// formatLabel dims the "label:" prefix of a detail line, if it has one.
func formatLabel(detail string) string {
	label, rest, found := strings.Cut(detail, ": ")
	if !found || strings.Contains(label, " ") {
		return detail
	}
	return fmt.Sprintf("%s%s:%s %s", dim, label, reset, rest)
}
