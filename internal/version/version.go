// Package version holds build metadata injected at link time via
// -ldflags "-X github.com/nkzrv/cyberdeck/internal/version.Version=...".
package version

var (
	// Version is the semantic release version.
	Version = "dev"
	// Commit is the short git hash of the build.
	Commit = ""
	// BuildDate is the UTC build timestamp.
	BuildDate = ""
)
