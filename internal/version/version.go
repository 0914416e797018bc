// Package version holds build identification, overridden at link time via
// -ldflags "-X github.com/yhao3/hinto/internal/version.Version=...".
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
