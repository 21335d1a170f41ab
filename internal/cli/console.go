package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	statusColor  = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	labelColor   = color.New(color.FgBlue)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func statusf(format string, a ...interface{}) {
	statusColor.Printf(format, a...)
}

func successf(format string, a ...interface{}) {
	successColor.Printf(format, a...)
}

// warnf prints a warning to stderr.
func warnf(format string, a ...interface{}) {
	warnColor.Fprintf(os.Stderr, format, a...)
}

// detailf prints a labelled value line of the run summary.
func detailf(label, format string, a ...interface{}) {
	labelColor.Print(label + ": ")
	fmt.Printf(format, a...)
}
