// Package version exposes build metadata stamped at link time.
package version

import "fmt"

var (
	// Version is the current converter version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// Tag returns the version string written into emitted header preambles.
func Tag() string {
	return fmt.Sprintf("corsikaIOreader %s (%s)", Version, GitSHA)
}
