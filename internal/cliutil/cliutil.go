// Package cliutil holds the small pieces shared by the seg-* command-line
// tools: a colorized error reporter and an exit-code convention, the same
// composition-root idiom the genfile CLI uses for its own main.go.
package cliutil

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var stderr = colorable.NewColorableStderr()

var errorColor = color.New(color.FgRed, color.Bold)

// Fail prints a red diagnostic to stderr and exits with status 1. Every
// seg-* tool's main calls this, never os.Exit directly, so exit codes stay
// consistent across the CLI surface.
func Fail(toolName string, err error) {
	errorColor.Fprintf(stderr, "%s: error: %v\n", toolName, err)
	os.Exit(1)
}

// Failf is Fail with a formatted message instead of an error value.
func Failf(toolName, format string, args ...any) {
	Fail(toolName, fmt.Errorf(format, args...))
}
