package main

import (
	"github.com/bnema/lunar/internal/build"
	"github.com/bnema/lunar/internal/cli/cmd"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.New(version, commit, buildDate))
	cmd.Execute()
}
