// Package version holds build information stamped in at link time.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/inkwell/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/inkwell/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/inkwell/internal/version.Date={{.Date}}
)

// Info is the build information in one value
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build information
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}
