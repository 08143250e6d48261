// Package version reports build metadata set via ldflags, for example
// go build -ldflags "-X github.com/ChrisShen93/xstate/internal/version.Version=v0.3.0".
package version

import "fmt"

var Version = "dev"

var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the build metadata for --version output.
func String() string {
	return fmt.Sprintf("docnav %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
