// Package version exposes the lumenvault build identity. The values
// are stamped with -ldflags at release time and reported in the boot
// log line.
package version

//nolint:revive // Overwritten by the build pipeline.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
