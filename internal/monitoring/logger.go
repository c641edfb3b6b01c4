// Package monitoring holds the diagnostic logger shared by the converter and
// the command line tool.
package monitoring

import (
	"io"
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// Logf is the package-level diagnostic logger. It defaults to a stderr logger
// but may be replaced by SetLogger or redirected by SetOutput.
var Logf func(format string, v ...interface{}) = std.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetOutput points the default logger at w and makes it the active logger.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
	Logf = std.Printf
}
