// Package version holds build metadata injected with -ldflags.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String formats the build metadata for -version output.
func String() string {
	return fmt.Sprintf("diagstyle %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
