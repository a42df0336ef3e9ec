package main

import (
	"github.com/tacogips/skel/internal/cli"
	"github.com/tacogips/skel/internal/version"
)

// Version information (set via ldflags during build)
var (
	buildVersion = "dev"
	gitCommit    = "unknown"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.GitCommit = gitCommit
	version.BuildDate = buildDate

	cli.Execute()
}
