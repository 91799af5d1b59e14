// cmd/ckpoint/main.go
package main

import (
	cmd "github.com/prajaktaborse1234/synthmerge/internal/cli"
)

// Build-time variables, injected via -ldflags on release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the ckpoint CLI application by delegating to the
// cobra root command defined in the ckpoint package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
