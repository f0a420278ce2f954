// Package version holds the fraglog version information.
// This is a separate package to avoid import cycles - it has no dependencies
// and can be safely imported from any package.
package version

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the full version line printed by 'fraglog version'.
func String() string {
	return Version + " (" + Commit + ", " + BuildDate + ")"
}
