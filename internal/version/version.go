// Package version holds build metadata injected via ldflags.
package version

// Build metadata, overridden at build time:
//
//	go build -ldflags "-X github.com/tacogips/skel/internal/version.Version=v1.2.3"
var (
	// Version is the release version.
	Version = "dev"
	// GitCommit is the git commit the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
