package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/philipparndt/golabel/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string. Development builds fall back to the
// module version recorded by the go tool.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetFullVersion returns the version with commit and build date when known
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit == "unknown" {
		return v
	}
	if BuildDate == "unknown" {
		return fmt.Sprintf("%s (%s)", v, GitCommit)
	}
	return fmt.Sprintf("%s (%s, built %s)", v, GitCommit, BuildDate)
}
