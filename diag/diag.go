/*
Package diag reports human-readable warnings and errors for the validation
and instruction layers, standing in for the distilled spec's external
message module. Output goes through pterm so the demo CLI and test runs
share the same prefix styling.
*/
package diag

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Quiet suppresses output without changing any caller's control flow.
// Tests flip this on to keep `go test -v` output readable.
var Quiet bool

func init() {
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " WARN ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Warnf reports a non-fatal validation diagnostic, e.g. a rejected synonym
// batch.
func Warnf(format string, args ...interface{}) {
	if Quiet {
		return
	}
	pterm.Warning.Println(fmt.Sprintf(format, args...))
}

// Errorf reports a diagnostic for a condition the caller treats as more
// severe than a warning but that still doesn't interrupt parsing.
func Errorf(format string, args ...interface{}) {
	if Quiet {
		return
	}
	pterm.Error.Println(fmt.Sprintf(format, args...))
}
