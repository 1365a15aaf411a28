// Package version holds the build version for rrun.
package version

// Version is set at build time via -ldflags "-X github.com/NielsdaWheelz/rrun/internal/version.Version=...".
var Version = "dev"

// Commit is the git commit SHA, set at build time via -ldflags.
var Commit = ""

// FullVersion returns "vX.Y.Z (commit <shortsha>)", or just the version when no commit was recorded.
func FullVersion() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 12 {
		short = short[:12]
	}
	return Version + " (commit " + short + ")"
}
