// Package version holds build information stamped in at link time via
// -ldflags "-X github.com/newjordan/pdfchunk/version.GitRelease=...".
package version

import "runtime"

var (
	// GitRelease is the release tag or version string.
	GitRelease = "2.0.0-dev"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"

	// GitCommitDate is the date of that commit.
	GitCommitDate = "unknown"
)

// GoInfo is the Go runtime version the binary was built with.
var GoInfo = runtime.Version()
