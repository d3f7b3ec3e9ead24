// Package buildinfo exposes build metadata injected via ldflags.
package buildinfo

var (
	// Version is the release version, set via ldflags during build.
	Version = "dev"
	// Commit is the git commit hash, set via ldflags during build.
	Commit = "none"
	// Date is the build timestamp, set via ldflags during build.
	Date = "unknown"
)
