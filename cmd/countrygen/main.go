// countrygen regenerates the ISO 3166 country tables of the logbook library.
package main

import (
	"github.com/hightemp/countrygen/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
